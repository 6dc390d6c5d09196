package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MentorHandler defines the interface for handling mentor operations
type MentorHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
}

type mentorHandler struct {
	mentorService alternance.MentorService
}

// NewMentorHandler creates a new MentorHandler
func NewMentorHandler(mentorService alternance.MentorService) MentorHandler {
	return &mentorHandler{mentorService: mentorService}
}

func (handler *mentorHandler) Create(ctx *gin.Context) {
	var req MentorRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	mentor, err := handler.mentorService.Create(ctx, req.ToDomain(""), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMentorResponse(mentor))
}

// List fetches mentors, optionally only the active ones or those matching a search term
func (handler *mentorHandler) List(ctx *gin.Context) {
	query := &alternance.MentorQuery{Limit: 50}

	if active := ctx.Query("active"); len(active) > 0 {
		value, err := strconv.ParseBool(active)
		if err != nil {
			respondBadRequest(ctx, "active must be true or false")
			return
		}
		query.Active = &value
	}
	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	mentors, err := handler.mentorService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		resp = append(resp, newMentorResponse(m))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (handler *mentorHandler) GetByID(ctx *gin.Context) {
	mentor, err := handler.mentorService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMentorResponse(mentor))
}

func (handler *mentorHandler) Update(ctx *gin.Context) {
	var req MentorRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	mentor := req.ToDomain(ctx.Param("id"))
	if req.Active == nil {
		existing, err := handler.mentorService.Get(ctx, mentor.ID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		mentor.Active = existing.Active
	}

	mentor, err := handler.mentorService.Update(ctx, mentor, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMentorResponse(mentor))
}

// Deactivate answers DELETE on a mentor. Mentors are kept for the contract history.
func (handler *mentorHandler) Deactivate(ctx *gin.Context) {
	mentor, err := handler.mentorService.Deactivate(ctx, ctx.Param("id"), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMentorResponse(mentor))
}

// ContractHandler defines the interface for handling alternance contract operations
type ContractHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	TransitionStatus(ctx *gin.Context)
}

type contractHandler struct {
	contractService alternance.ContractService
	now             func() time.Time
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService alternance.ContractService) ContractHandler {
	return &contractHandler{contractService: contractService, now: time.Now}
}

func (handler *contractHandler) Create(ctx *gin.Context) {
	var req ContractRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	contract, err := handler.contractService.Create(ctx, req.ToDomain(), username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newContractResponse(contract, handler.now()))
}

// List fetches contracts filtered by status, mentor or student
func (handler *contractHandler) List(ctx *gin.Context) {
	query := &alternance.ContractQuery{
		Status:    ctx.Query("status"),
		MentorID:  ctx.Query("mentorId"),
		StudentID: ctx.Query("studentId"),
		Limit:     50,
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	contracts, err := handler.contractService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := handler.now()
	resp := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, newContractResponse(c, now))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (handler *contractHandler) GetByID(ctx *gin.Context) {
	contract, err := handler.contractService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContractResponse(contract, handler.now()))
}

// TransitionStatus moves a contract through its lifecycle
func (handler *contractHandler) TransitionStatus(ctx *gin.Context) {
	var req StatusTransitionRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	contract, err := handler.contractService.TransitionStatus(ctx, ctx.Param("id"), req.Status, username(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContractResponse(contract, handler.now()))
}
