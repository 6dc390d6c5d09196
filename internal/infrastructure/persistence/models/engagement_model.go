package models

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"

	"gorm.io/gorm"
)

// EngagementModel is the GORM database model for student engagement records
type EngagementModel struct {
	StudentID       string  `gorm:"primaryKey;type:uuid"`
	StudentName     string  `gorm:"not null;type:varchar(200)"`
	FormationTitle  string  `gorm:"not null;type:varchar(255)"`
	AttendanceRate  float64 `gorm:"not null"`
	EngagementScore float64 `gorm:"not null"`
	MissedSessions  int     `gorm:"not null;default:0"`
	LastActivityAt  *time.Time
	RiskScore       int       `gorm:"not null;default:0"`
	RiskLevel       string    `gorm:"not null;type:varchar(20)"`
	AtRisk          bool      `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EngagementModel) TableName() string {
	return "student_engagements"
}

// BeforeSave refreshes the modification date.
func (m *EngagementModel) BeforeSave(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// ToDomain converts GORM model to domain entity
func (m *EngagementModel) ToDomain() *engagement.StudentEngagement {
	return &engagement.StudentEngagement{
		StudentID:       m.StudentID,
		StudentName:     m.StudentName,
		FormationTitle:  m.FormationTitle,
		AttendanceRate:  m.AttendanceRate,
		EngagementScore: m.EngagementScore,
		MissedSessions:  m.MissedSessions,
		LastActivityAt:  m.LastActivityAt,
		RiskScore:       m.RiskScore,
		RiskLevel:       m.RiskLevel,
		AtRisk:          m.AtRisk,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EngagementModel) FromDomain(s *engagement.StudentEngagement) {
	m.StudentID = s.StudentID
	m.StudentName = s.StudentName
	m.FormationTitle = s.FormationTitle
	m.AttendanceRate = s.AttendanceRate
	m.EngagementScore = s.EngagementScore
	m.MissedSessions = s.MissedSessions
	m.LastActivityAt = s.LastActivityAt
	m.RiskScore = s.RiskScore
	m.RiskLevel = s.RiskLevel
	m.AtRisk = s.AtRisk
	m.UpdatedAt = s.UpdatedAt
}
