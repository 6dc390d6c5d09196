package v1

import (
	"errors"
	"net/http"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrValidation),
		errors.Is(err, engagement.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, prospects.ErrNotFound),
		errors.Is(err, alternance.ErrNotFound),
		errors.Is(err, engagement.ErrNotFound),
		errors.Is(err, audit.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, alternance.ErrInvalidTransition),
		errors.Is(err, alternance.ErrMentorUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(statusFor(err), ErrorResponse{Message: err.Error()})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// bindAndValidate decodes the JSON body into req and runs its validation.
// It writes the 400 response itself and reports whether the handler may go on.
func bindAndValidate(ctx *gin.Context, req interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondBadRequest(ctx, "invalid request body: "+err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, err)
		return false
	}
	return true
}
