package prospects

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// Contact request types
const (
	ContactTypeQuote             = "quote"
	ContactTypeAdvice            = "advice"
	ContactTypeInformation       = "information"
	ContactTypeQuickRegistration = "quick_registration"
)

// Needs analysis types
const (
	AnalysisTypeCompany    = "company"
	AnalysisTypeIndividual = "individual"
)

// ContactRequest is an inbound request (quote, advice...) attached to a prospect.
type ContactRequest struct {
	ID         string `validate:"required,uuid4"`
	ProspectID string `validate:"required,uuid4"`
	Type       string `validate:"required,oneof=quote advice information quick_registration"`
	Subject    string `validate:"max=200"`
	Message    string `validate:"max=5000"`
	CreatedAt  time.Time
}

// Validate for validating ContactRequest struct
func (c *ContactRequest) Validate() error {
	return validators.Struct(c)
}

// NeedsAnalysisRequest is a training needs questionnaire sent to a prospect.
type NeedsAnalysisRequest struct {
	ID          string `validate:"required,uuid4"`
	ProspectID  string `validate:"required,uuid4"`
	Type        string `validate:"required,oneof=company individual"`
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Validate for validating NeedsAnalysisRequest struct
func (n *NeedsAnalysisRequest) Validate() error {
	return validators.Struct(n)
}

// Complete marks the analysis as filled in at the given time. Completing an
// already completed analysis keeps the original completion date.
func (n *NeedsAnalysisRequest) Complete(at time.Time) {
	if n.Completed {
		return
	}
	n.Completed = true
	n.CompletedAt = &at
}
