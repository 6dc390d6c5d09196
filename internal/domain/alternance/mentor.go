package alternance

import (
	"strings"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// MaxContractsPerMentor is the number of running contracts a mentor may supervise at once.
const MaxContractsPerMentor = 3

// MentorEntityClass is the name under which mentors are audited.
const MentorEntityClass = "Mentor"

// Education levels
const (
	EducationLevelCAP    = "cap"
	EducationLevelBac    = "bac"
	EducationLevelBac2   = "bac+2"
	EducationLevelBac3   = "bac+3"
	EducationLevelBac5   = "bac+5"
	EducationLevelDoctor = "doctorat"
)

// Mentor is a company employee supervising apprentices.
type Mentor struct {
	ID               string   `validate:"required,uuid4"`
	FirstName        string   `validate:"required,min=2,max=100"`
	LastName         string   `validate:"required,min=2,max=100"`
	Email            string   `validate:"required,email,max=180"`
	Phone            string   `validate:"omitempty,frphone"`
	Position         string   `validate:"required,max=150"`
	CompanyName      string   `validate:"required,max=200"`
	CompanySiret     string   `validate:"required,siret"`
	ExpertiseDomains []string `validate:"dive,required,max=100"`
	ExperienceYears  int      `validate:"min=0,max=60"`
	EducationLevel   string   `validate:"omitempty,oneof=cap bac bac+2 bac+3 bac+5 doctorat"`
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate for validating Mentor struct
func (m *Mentor) Validate() error {
	return validators.Struct(m)
}

// FullName returns the first and last name separated by a space.
func (m *Mentor) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// CanSuperviseMore reports whether the mentor can take one more contract
// given the number of contracts currently running under them.
func (m *Mentor) CanSuperviseMore(activeContracts int) bool {
	return m.Active && activeContracts < MaxContractsPerMentor
}

// Snapshot returns the audited field values of the mentor.
func (m *Mentor) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        m.FirstName,
		"lastName":         m.LastName,
		"email":            m.Email,
		"phone":            m.Phone,
		"position":         m.Position,
		"companyName":      m.CompanyName,
		"companySiret":     m.CompanySiret,
		"expertiseDomains": append([]string(nil), m.ExpertiseDomains...),
		"experienceYears":  m.ExperienceYears,
		"educationLevel":   m.EducationLevel,
		"active":           m.Active,
	}
}

// MentorQuery filters mentor listings.
type MentorQuery struct {
	Active *bool
	Search string `validate:"omitempty,max=100"`
	Limit  int    `validate:"omitempty,gt=0,max=200"`
	Offset int    `validate:"omitempty,gte=0"`
}

// Validate for validating MentorQuery struct
func (q *MentorQuery) Validate() error {
	return validators.Struct(q)
}
