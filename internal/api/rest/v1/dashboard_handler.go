package v1

import (
	"net/http"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role based landing summary and the liveness probe
type DashboardHandler interface {
	Summary(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService, now: time.Now}
}

func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	principal := principalFrom(ctx)
	if principal == nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	summary, err := handler.dashboardService.Summary(ctx, principal)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDashboardResponse(summary, handler.now()))
}

func (handler *dashboardHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: handler.now().UTC()})
}
