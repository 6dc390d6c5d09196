package v1

import (
	"net/http"
	"strconv"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"

	"github.com/gin-gonic/gin"
)

// EngagementHandler defines the interface for handling engagement tracking operations
type EngagementHandler interface {
	Upsert(ctx *gin.Context)
	ListAtRisk(ctx *gin.Context)
	Reevaluate(ctx *gin.Context)
	Dashboard(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type engagementHandler struct {
	engagementService engagement.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagementService engagement.EngagementService) EngagementHandler {
	return &engagementHandler{engagementService: engagementService}
}

// Upsert stores the engagement record of a student and returns it with its risk evaluation
func (handler *engagementHandler) Upsert(ctx *gin.Context) {
	var req EngagementRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	record, err := handler.engagementService.UpsertRecord(ctx, req.ToDomain(), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEngagementResponse(record))
}

func (handler *engagementHandler) ListAtRisk(ctx *gin.Context) {
	records, err := handler.engagementService.ListAtRisk(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEngagementResponses(records))
}

// Reevaluate refreshes the stored risk of every student as of now
func (handler *engagementHandler) Reevaluate(ctx *gin.Context) {
	updated, err := handler.engagementService.Reevaluate(ctx, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ReevaluationResponse{Updated: updated})
}

// Dashboard returns the engagement report and the Qualiopi compliance score
func (handler *engagementHandler) Dashboard(ctx *gin.Context) {
	d, err := handler.engagementService.Dashboard(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEngagementDashboardResponse(d))
}

// Export downloads the engagement data as csv, xlsx or pdf
func (handler *engagementHandler) Export(ctx *gin.Context) {
	file, err := handler.engagementService.Export(ctx, ctx.Param("format"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if file.Location != "" {
		ctx.Header("X-Archive-Location", file.Location)
	}
	ctx.Header("Content-Disposition", "attachment; filename="+strconv.Quote(file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Content)
}
