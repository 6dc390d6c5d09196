package v1

import (
	"net/http"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for browsing the audit log
type AuditHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	History(ctx *gin.Context)
}

type auditHandler struct {
	auditService audit.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{auditService: auditService}
}

// List fetches log entries optionally filtered with query parameters
func (handler *auditHandler) List(ctx *gin.Context) {
	query := audit.NewQuery()

	query.ObjectClass = ctx.Query("entityClass")
	query.ObjectID = ctx.Query("entityId")
	query.Action = ctx.Query("action")
	query.Username = ctx.Query("username")
	query.From = utils.ParseOptionalTime(ctx.Query("from"))
	query.To = utils.ParseOptionalTime(ctx.Query("to"))
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	entries, err := handler.auditService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, newLogEntryResponse(e))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetByID fetches one entry with its labelled changes
func (handler *auditHandler) GetByID(ctx *gin.Context) {
	entry, err := handler.auditService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newHistoryEntryResponse(entry))
}

// History lists the versions of one object, newest first
func (handler *auditHandler) History(ctx *gin.Context) {
	history, err := handler.auditService.History(ctx, ctx.Param("entityClass"), ctx.Param("entityId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]HistoryEntryResponse, 0, len(history))
	for _, h := range history {
		resp = append(resp, newHistoryEntryResponse(h))
	}
	ctx.JSON(http.StatusOK, resp)
}
