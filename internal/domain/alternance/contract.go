package alternance

import (
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// ContractEntityClass is the name under which contracts are audited.
const ContractEntityClass = "AlternanceContract"

// Contract types
const (
	ContractTypeApprenticeship      = "apprentissage"
	ContractTypeProfessionalisation = "professionnalisation"
)

// Contract statuses
const (
	ContractStatusDraft             = "draft"
	ContractStatusPendingValidation = "pending_validation"
	ContractStatusValidated         = "validated"
	ContractStatusActive            = "active"
	ContractStatusSuspended         = "suspended"
	ContractStatusCompleted         = "completed"
	ContractStatusTerminated        = "terminated"
)

var allowedTransitions = map[string][]string{
	ContractStatusDraft:             {ContractStatusPendingValidation, ContractStatusTerminated},
	ContractStatusPendingValidation: {ContractStatusDraft, ContractStatusValidated, ContractStatusTerminated},
	ContractStatusValidated:         {ContractStatusActive, ContractStatusTerminated},
	ContractStatusActive:            {ContractStatusSuspended, ContractStatusCompleted, ContractStatusTerminated},
	ContractStatusSuspended:         {ContractStatusActive, ContractStatusTerminated},
	ContractStatusCompleted:         {},
	ContractStatusTerminated:        {},
}

// Contract binds a student to a host company and mentor for a work-study programme.
type Contract struct {
	ID                 string    `validate:"required,uuid4"`
	StudentID          string    `validate:"required,uuid4"`
	MentorID           string    `validate:"required,uuid4"`
	CompanyName        string    `validate:"required,max=200"`
	CompanySiret       string    `validate:"required,siret"`
	ContractType       string    `validate:"required,oneof=apprentissage professionnalisation"`
	Status             string    `validate:"required,oneof=draft pending_validation validated active suspended completed terminated"`
	StartDate          time.Time `validate:"required"`
	EndDate            time.Time `validate:"required,gtfield=StartDate"`
	WeeklyCenterHours  int       `validate:"min=0,max=35"`
	WeeklyCompanyHours int       `validate:"min=0,max=35"`
	Remuneration       *float64  `validate:"omitempty,min=0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate for validating Contract struct
func (c *Contract) Validate() error {
	return validators.Struct(c)
}

// CanTransitionTo reports whether the contract may move to status.
func (c *Contract) CanTransitionTo(status string) bool {
	for _, next := range allowedTransitions[c.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// TransitionTo moves the contract to status or returns ErrInvalidTransition.
func (c *Contract) TransitionTo(status string) error {
	if !c.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, status)
	}
	c.Status = status
	return nil
}

// IsRunning reports whether the contract occupies one of its mentor's slots.
func (c *Contract) IsRunning() bool {
	switch c.Status {
	case ContractStatusValidated, ContractStatusActive, ContractStatusSuspended:
		return true
	}
	return false
}

// DurationInMonths returns the number of whole months between start and end.
func (c *Contract) DurationInMonths() int {
	months := (c.EndDate.Year()-c.StartDate.Year())*12 + int(c.EndDate.Month()) - int(c.StartDate.Month())
	if c.EndDate.Day() < c.StartDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// ProgressPercent returns the elapsed share of the contract at now, between 0 and 100.
func (c *Contract) ProgressPercent(now time.Time) float64 {
	total := c.EndDate.Sub(c.StartDate)
	if total <= 0 || !now.After(c.StartDate) {
		return 0
	}
	if !now.Before(c.EndDate) {
		return 100
	}
	return utils.RoundTo(float64(now.Sub(c.StartDate))/float64(total)*100, 1)
}

// Snapshot returns the audited field values of the contract.
func (c *Contract) Snapshot() map[string]interface{} {
	snapshot := map[string]interface{}{
		"studentId":          c.StudentID,
		"mentorId":           c.MentorID,
		"companyName":        c.CompanyName,
		"companySiret":       c.CompanySiret,
		"contractType":       c.ContractType,
		"status":             c.Status,
		"startDate":          c.StartDate.UTC().Format(time.RFC3339),
		"endDate":            c.EndDate.UTC().Format(time.RFC3339),
		"weeklyCenterHours":  c.WeeklyCenterHours,
		"weeklyCompanyHours": c.WeeklyCompanyHours,
		"remuneration":       nil,
	}
	if c.Remuneration != nil {
		snapshot["remuneration"] = *c.Remuneration
	}
	return snapshot
}

// ContractQuery filters contract listings.
type ContractQuery struct {
	Status    string `validate:"omitempty,oneof=draft pending_validation validated active suspended completed terminated"`
	MentorID  string `validate:"omitempty,uuid4"`
	StudentID string `validate:"omitempty,uuid4"`
	Limit     int    `validate:"omitempty,gt=0,max=200"`
	Offset    int    `validate:"omitempty,gte=0"`
}

// Validate for validating ContractQuery struct
func (q *ContractQuery) Validate() error {
	return validators.Struct(q)
}
