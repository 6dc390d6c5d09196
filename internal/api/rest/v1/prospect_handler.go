package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProspectHandler defines the interface for handling CRM operations
type ProspectHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Score(ctx *gin.Context)
	Statistics(ctx *gin.Context)
	AddNote(ctx *gin.Context)
	ListNotes(ctx *gin.Context)
	AddContactRequest(ctx *gin.Context)
	AddNeedsAnalysis(ctx *gin.Context)
	CompleteNeedsAnalysis(ctx *gin.Context)
}

type prospectHandler struct {
	prospectService prospects.ProspectService
	activityService prospects.ProspectActivityService
}

// NewProspectHandler creates a new ProspectHandler
func NewProspectHandler(prospectService prospects.ProspectService, activityService prospects.ProspectActivityService) ProspectHandler {
	return &prospectHandler{
		prospectService: prospectService,
		activityService: activityService,
	}
}

// Create registers a new prospect
func (handler *prospectHandler) Create(ctx *gin.Context) {
	var req ProspectRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	prospect, err := handler.prospectService.Create(ctx, req.ToDomain(""), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newProspectResponse(prospect))
}

// List fetches prospects optionally filtered with query parameters
func (handler *prospectHandler) List(ctx *gin.Context) {
	query := prospects.NewProspectQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if priority := ctx.Query("priority"); len(priority) > 0 {
		query.Priority = priority
	}
	if source := ctx.Query("source"); len(source) > 0 {
		query.Source = source
	}
	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}
	if assignedTo := ctx.Query("assignedTo"); len(assignedTo) > 0 {
		query.AssignedToID = assignedTo
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	list, err := handler.prospectService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]ProspectResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, newProspectResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetByID fetches a prospect with its contact requests and needs analyses
func (handler *prospectHandler) GetByID(ctx *gin.Context) {
	prospect, err := handler.prospectService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProspectResponse(prospect))
}

// Update overwrites a prospect
func (handler *prospectHandler) Update(ctx *gin.Context) {
	var req ProspectRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	prospect, err := handler.prospectService.Update(ctx, req.ToDomain(ctx.Param("id")), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProspectResponse(prospect))
}

// DeleteByID deletes a prospect and its activity
func (handler *prospectHandler) DeleteByID(ctx *gin.Context) {
	prospectID := ctx.Param("id")

	if err := handler.prospectService.Delete(ctx, prospectID, username(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted prospect with id %s", prospectID)})
}

// Score returns the lead score of a prospect
func (handler *prospectHandler) Score(ctx *gin.Context) {
	prospect, err := handler.prospectService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	score := prospect.LeadScore()
	ctx.JSON(http.StatusOK, ScoreResponse{
		ProspectID: prospect.ID,
		Score:      score,
		Level:      prospects.LevelForScore(score),
	})
}

// Statistics summarises the sales funnel
func (handler *prospectHandler) Statistics(ctx *gin.Context) {
	stats, err := handler.prospectService.Statistics(ctx, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// AddNote logs an interaction on a prospect
func (handler *prospectHandler) AddNote(ctx *gin.Context) {
	var req NoteRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	var authorID string
	if principal := principalFrom(ctx); principal != nil {
		authorID = principal.ID
	}

	note, err := handler.activityService.AddNote(ctx, &prospects.Note{
		ProspectID:  ctx.Param("id"),
		Title:       req.Title,
		Content:     req.Content,
		Type:        req.Type,
		Status:      req.Status,
		Important:   req.Important,
		Private:     req.Private,
		ScheduledAt: req.ScheduledAt,
		CreatedByID: authorID,
	}, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newNoteResponse(note))
}

// ListNotes lists the notes of a prospect visible to the caller
func (handler *prospectHandler) ListNotes(ctx *gin.Context) {
	var userID string
	if principal := principalFrom(ctx); principal != nil {
		userID = principal.ID
	}

	notes, err := handler.activityService.ListNotes(ctx, ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, newNoteResponse(n))
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddContactRequest records an inbound request on a prospect
func (handler *prospectHandler) AddContactRequest(ctx *gin.Context) {
	var req ContactRequestRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	request, err := handler.activityService.AddContactRequest(ctx, &prospects.ContactRequest{
		ProspectID: ctx.Param("id"),
		Type:       req.Type,
		Subject:    req.Subject,
		Message:    req.Message,
	}, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newContactRequestResponse(request))
}

// AddNeedsAnalysis sends a needs analysis to a prospect
func (handler *prospectHandler) AddNeedsAnalysis(ctx *gin.Context) {
	var req NeedsAnalysisCreateRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	analysis, err := handler.activityService.AddNeedsAnalysis(ctx, &prospects.NeedsAnalysisRequest{
		ProspectID: ctx.Param("id"),
		Type:       req.Type,
	}, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newNeedsAnalysisResponse(analysis))
}

// CompleteNeedsAnalysis marks a needs analysis as filled in
func (handler *prospectHandler) CompleteNeedsAnalysis(ctx *gin.Context) {
	analysis, err := handler.activityService.CompleteNeedsAnalysis(ctx, ctx.Param("id"), ctx.Param("analysisId"), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newNeedsAnalysisResponse(analysis))
}
