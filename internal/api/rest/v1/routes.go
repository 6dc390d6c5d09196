package v1

import (
	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Services groups the application services the API exposes.
type Services struct {
	Prospects  prospects.ProspectService
	Activity   prospects.ProspectActivityService
	Mentors    alternance.MentorService
	Contracts  alternance.ContractService
	Engagement engagement.EngagementService
	Audit      audit.AuditService
	Dashboard  dashboard.DashboardService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, auth config.AuthSettings) {
	v1 := r.Group(BasePath) // lookup in version file

	dashboardHandler := NewDashboardHandler(services.Dashboard)
	v1.GET("/health", dashboardHandler.Health)

	secured := v1.Group("", AuthMiddleware(auth))
	secured.GET("/dashboard", dashboardHandler.Summary)

	adminOnly := RequireRoles(identity.RoleAdmin)
	staff := RequireRoles(identity.RoleAdmin, identity.RoleTeacher)

	// Prospects Routes
	prospectHandler := NewProspectHandler(services.Prospects, services.Activity)
	prospectRoutes := secured.Group("/prospects", adminOnly)
	prospectRoutes.POST("", prospectHandler.Create)
	prospectRoutes.GET("", prospectHandler.List)
	prospectRoutes.GET("/statistics", prospectHandler.Statistics)
	prospectRoutes.GET("/:id", prospectHandler.GetByID)
	prospectRoutes.PUT("/:id", prospectHandler.Update)
	prospectRoutes.DELETE("/:id", prospectHandler.DeleteByID)
	prospectRoutes.GET("/:id/score", prospectHandler.Score)
	prospectRoutes.POST("/:id/notes", prospectHandler.AddNote)
	prospectRoutes.GET("/:id/notes", prospectHandler.ListNotes)
	prospectRoutes.POST("/:id/contact-requests", prospectHandler.AddContactRequest)
	prospectRoutes.POST("/:id/needs-analyses", prospectHandler.AddNeedsAnalysis)
	prospectRoutes.PUT("/:id/needs-analyses/:analysisId/complete", prospectHandler.CompleteNeedsAnalysis)

	// Mentors Routes
	mentorHandler := NewMentorHandler(services.Mentors)
	mentorRoutes := secured.Group("/mentors", staff)
	mentorRoutes.GET("", mentorHandler.List)
	mentorRoutes.GET("/:id", mentorHandler.GetByID)
	mentorRoutes.POST("", adminOnly, mentorHandler.Create)
	mentorRoutes.PUT("/:id", adminOnly, mentorHandler.Update)
	mentorRoutes.DELETE("/:id", adminOnly, mentorHandler.Deactivate)

	// Contracts Routes
	contractHandler := NewContractHandler(services.Contracts)
	contractRoutes := secured.Group("/alternance/contracts", staff)
	contractRoutes.GET("", contractHandler.List)
	contractRoutes.GET("/:id", contractHandler.GetByID)
	contractRoutes.POST("", adminOnly, contractHandler.Create)
	contractRoutes.PUT("/:id/status", adminOnly, contractHandler.TransitionStatus)

	// Engagement Routes
	engagementHandler := NewEngagementHandler(services.Engagement)
	engagementRoutes := secured.Group("/engagement", staff)
	engagementRoutes.PUT("/records", engagementHandler.Upsert)
	engagementRoutes.GET("/at-risk", engagementHandler.ListAtRisk)

	// Admin Routes
	admin := secured.Group("/admin", adminOnly)
	admin.GET("/engagement/dashboard", engagementHandler.Dashboard)
	admin.GET("/engagement/export/:format", engagementHandler.Export)
	admin.POST("/engagement/reevaluate", engagementHandler.Reevaluate)

	auditHandler := NewAuditHandler(services.Audit)
	admin.GET("/audit", auditHandler.List)
	admin.GET("/audit/:id", auditHandler.GetByID)
	admin.GET("/audit/entity/:entityClass/:entityId", auditHandler.History)
}
