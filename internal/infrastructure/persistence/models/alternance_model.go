package models

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
)

// MentorModel is the GORM database model for company mentors
type MentorModel struct {
	ID               string   `gorm:"primaryKey;type:uuid"`
	FirstName        string   `gorm:"not null;type:varchar(100)"`
	LastName         string   `gorm:"not null;index;type:varchar(100)"`
	Email            string   `gorm:"not null;uniqueIndex;type:varchar(180)"`
	Phone            string   `gorm:"type:varchar(30)"`
	Position         string   `gorm:"not null;type:varchar(150)"`
	CompanyName      string   `gorm:"not null;type:varchar(200)"`
	CompanySiret     string   `gorm:"not null;index;type:varchar(20)"`
	ExpertiseDomains []string `gorm:"serializer:json;type:text"`
	ExperienceYears  int      `gorm:"not null;default:0"`
	EducationLevel   string   `gorm:"type:varchar(20)"`
	Active           bool     `gorm:"not null;default:true;index"`
	Timestamps
}

// TableName specifies the table name for GORM
func (MentorModel) TableName() string {
	return "mentors"
}

// ToDomain converts GORM model to domain entity
func (m *MentorModel) ToDomain() *alternance.Mentor {
	return &alternance.Mentor{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Position:         m.Position,
		CompanyName:      m.CompanyName,
		CompanySiret:     m.CompanySiret,
		ExpertiseDomains: m.ExpertiseDomains,
		ExperienceYears:  m.ExperienceYears,
		EducationLevel:   m.EducationLevel,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MentorModel) FromDomain(mentor *alternance.Mentor) {
	m.ID = mentor.ID
	m.FirstName = mentor.FirstName
	m.LastName = mentor.LastName
	m.Email = mentor.Email
	m.Phone = mentor.Phone
	m.Position = mentor.Position
	m.CompanyName = mentor.CompanyName
	m.CompanySiret = mentor.CompanySiret
	m.ExpertiseDomains = mentor.ExpertiseDomains
	m.ExperienceYears = mentor.ExperienceYears
	m.EducationLevel = mentor.EducationLevel
	m.Active = mentor.Active
	m.CreatedAt = mentor.CreatedAt
	m.UpdatedAt = mentor.UpdatedAt
}

// ContractModel is the GORM database model for alternance contracts
type ContractModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	StudentID          string    `gorm:"not null;index;type:uuid"`
	MentorID           string    `gorm:"not null;index;type:uuid"`
	CompanyName        string    `gorm:"not null;type:varchar(200)"`
	CompanySiret       string    `gorm:"not null;type:varchar(20)"`
	ContractType       string    `gorm:"not null;type:varchar(30)"`
	Status             string    `gorm:"not null;index;type:varchar(30)"`
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time `gorm:"not null"`
	WeeklyCenterHours  int       `gorm:"not null;default:0"`
	WeeklyCompanyHours int       `gorm:"not null;default:0"`
	Remuneration       *float64
	Timestamps
}

// TableName specifies the table name for GORM
func (ContractModel) TableName() string {
	return "alternance_contracts"
}

// ToDomain converts GORM model to domain entity
func (m *ContractModel) ToDomain() *alternance.Contract {
	return &alternance.Contract{
		ID:                 m.ID,
		StudentID:          m.StudentID,
		MentorID:           m.MentorID,
		CompanyName:        m.CompanyName,
		CompanySiret:       m.CompanySiret,
		ContractType:       m.ContractType,
		Status:             m.Status,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		WeeklyCenterHours:  m.WeeklyCenterHours,
		WeeklyCompanyHours: m.WeeklyCompanyHours,
		Remuneration:       m.Remuneration,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContractModel) FromDomain(c *alternance.Contract) {
	m.ID = c.ID
	m.StudentID = c.StudentID
	m.MentorID = c.MentorID
	m.CompanyName = c.CompanyName
	m.CompanySiret = c.CompanySiret
	m.ContractType = c.ContractType
	m.Status = c.Status
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.WeeklyCenterHours = c.WeeklyCenterHours
	m.WeeklyCompanyHours = c.WeeklyCompanyHours
	m.Remuneration = c.Remuneration
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
