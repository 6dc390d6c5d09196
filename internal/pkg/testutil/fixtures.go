package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/google/uuid"
)

// ValidSiret is a SIRET number passing the Luhn check.
const ValidSiret = "73282932000074"

// NewProspect returns a valid lead with random identity fields.
func NewProspect() *prospects.Prospect {
	return &prospects.Prospect{
		ID:        uuid.NewString(),
		FirstName: "Claire",
		LastName:  gofakeit.LastName() + "son",
		Email:     gofakeit.Email(),
		Phone:     "06 12 34 56 78",
		Company:   gofakeit.Company(),
		Position:  gofakeit.JobTitle(),
		Status:    prospects.StatusLead,
		Source:    "website",
		Priority:  prospects.PriorityMedium,
	}
}

// NewNote returns a valid public note on prospectID written by authorID.
func NewNote(prospectID, authorID string) *prospects.Note {
	return &prospects.Note{
		ID:          uuid.NewString(),
		ProspectID:  prospectID,
		Title:       "Premier appel",
		Content:     gofakeit.Sentence(8),
		Type:        prospects.NoteTypeCall,
		Status:      prospects.NoteStatusCompleted,
		CreatedByID: authorID,
	}
}

// NewMentor returns a valid active mentor.
func NewMentor() *alternance.Mentor {
	return &alternance.Mentor{
		ID:               uuid.NewString(),
		FirstName:        "Paul",
		LastName:         gofakeit.LastName() + "son",
		Email:            gofakeit.Email(),
		Position:         gofakeit.JobTitle(),
		CompanyName:      gofakeit.Company(),
		CompanySiret:     ValidSiret,
		ExpertiseDomains: []string{gofakeit.HackerNoun()},
		ExperienceYears:  gofakeit.Number(1, 30),
		EducationLevel:   alternance.EducationLevelBac3,
		Active:           true,
	}
}

// NewContract returns a valid draft apprenticeship contract supervised by mentorID.
func NewContract(mentorID string) *alternance.Contract {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return &alternance.Contract{
		ID:                 uuid.NewString(),
		StudentID:          uuid.NewString(),
		MentorID:           mentorID,
		CompanyName:        gofakeit.Company(),
		CompanySiret:       ValidSiret,
		ContractType:       alternance.ContractTypeApprenticeship,
		Status:             alternance.ContractStatusDraft,
		StartDate:          start,
		EndDate:            start.AddDate(2, 0, -1),
		WeeklyCenterHours:  14,
		WeeklyCompanyHours: 21,
	}
}

// NewEngagement returns a valid engagement record with the given rates.
func NewEngagement(attendance, engagementScore float64) *engagement.StudentEngagement {
	lastActivity := time.Now().UTC().Add(-24 * time.Hour)
	return &engagement.StudentEngagement{
		StudentID:       uuid.NewString(),
		StudentName:     gofakeit.Name(),
		FormationTitle:  "BTS " + gofakeit.JobDescriptor(),
		AttendanceRate:  attendance,
		EngagementScore: engagementScore,
		LastActivityAt:  &lastActivity,
	}
}
