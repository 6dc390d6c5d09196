package prospects

import (
	"strings"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// Funnel statuses
const (
	StatusLead        = "lead"
	StatusProspect    = "prospect"
	StatusQualified   = "qualified"
	StatusNegotiation = "negotiation"
	StatusCustomer    = "customer"
	StatusLost        = "lost"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// EntityClass is the name under which prospects are audited.
const EntityClass = "Prospect"

// Prospect is a CRM lead record tracked through the sales funnel.
type Prospect struct {
	ID                       string                 `validate:"required,uuid4"`
	FirstName                string                 `validate:"required,min=2,max=100"`
	LastName                 string                 `validate:"required,min=2,max=100"`
	Email                    string                 `validate:"required,email,max=180"`
	Phone                    string                 `validate:"omitempty,frphone"`
	Company                  string                 `validate:"max=150"`
	Position                 string                 `validate:"max=100"`
	Status                   string                 `validate:"required,oneof=lead prospect qualified negotiation customer lost"`
	Source                   string                 `validate:"omitempty,oneof=website referral social_media email_campaign phone event partner other"`
	Priority                 string                 `validate:"required,oneof=low medium high urgent"`
	EstimatedBudget          *float64               `validate:"omitempty,min=0"`
	ExpectedClosureDate      *time.Time             `validate:"-"`
	AssignedToID             *string                `validate:"omitempty,uuid4"`
	ContactRequests          []ContactRequest       `validate:"dive"`
	NeedsAnalyses            []NeedsAnalysisRequest `validate:"dive"`
	SessionRegistrationCount int                    `validate:"min=0"`
	InterestedFormationIDs   []string               `validate:"dive,required"`
	LastContactDate          *time.Time             `validate:"-"`
	NextFollowUpDate         *time.Time             `validate:"-"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Validate for validating Prospect struct
func (p *Prospect) Validate() error {
	return validators.Struct(p)
}

// FullName returns the first and last name separated by a space.
func (p *Prospect) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsOverdueFollowUp reports whether a planned follow-up date has passed on a
// prospect that is still open.
func (p *Prospect) IsOverdueFollowUp(now time.Time) bool {
	if p.NextFollowUpDate == nil {
		return false
	}
	if p.Status == StatusCustomer || p.Status == StatusLost {
		return false
	}
	return p.NextFollowUpDate.Before(now)
}

// Snapshot returns the audited field values of the prospect.
func (p *Prospect) Snapshot() map[string]interface{} {
	snapshot := map[string]interface{}{
		"firstName":                p.FirstName,
		"lastName":                 p.LastName,
		"email":                    p.Email,
		"phone":                    p.Phone,
		"company":                  p.Company,
		"position":                 p.Position,
		"status":                   p.Status,
		"source":                   p.Source,
		"priority":                 p.Priority,
		"sessionRegistrationCount": p.SessionRegistrationCount,
		"interestedFormations":     append([]string(nil), p.InterestedFormationIDs...),
		"estimatedBudget":          nil,
		"assignedTo":               nil,
		"expectedClosureDate":      nil,
		"nextFollowUpDate":         nil,
	}
	if p.EstimatedBudget != nil {
		snapshot["estimatedBudget"] = *p.EstimatedBudget
	}
	if p.AssignedToID != nil {
		snapshot["assignedTo"] = *p.AssignedToID
	}
	if p.ExpectedClosureDate != nil {
		snapshot["expectedClosureDate"] = p.ExpectedClosureDate.UTC().Format(time.RFC3339)
	}
	if p.NextFollowUpDate != nil {
		snapshot["nextFollowUpDate"] = p.NextFollowUpDate.UTC().Format(time.RFC3339)
	}
	return snapshot
}
