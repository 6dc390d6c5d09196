package engagement

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// Risk levels
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

const (
	lowAttendanceThreshold = 70.0
	lowEngagementThreshold = 50.0
	inactivityThreshold    = 14 * 24 * time.Hour
	missedSessionThreshold = 3

	lowAttendancePoints  = 30
	lowEngagementPoints  = 30
	inactivityPoints     = 20
	missedSessionsPoints = 20

	maxRiskScore      = 100
	atRiskRiskScore   = 50
	mediumRiskScore   = 30
	criticalRiskScore = 80
)

// EntityClass is the name under which engagement records are audited.
const EntityClass = "StudentEngagement"

// StudentEngagement is the engagement record of one student in one formation.
type StudentEngagement struct {
	StudentID       string  `validate:"required,uuid4"`
	StudentName     string  `validate:"required,max=200"`
	FormationTitle  string  `validate:"required,max=255"`
	AttendanceRate  float64 `validate:"min=0,max=100"`
	EngagementScore float64 `validate:"min=0,max=100"`
	MissedSessions  int     `validate:"min=0"`
	LastActivityAt  *time.Time
	RiskScore       int
	RiskLevel       string
	AtRisk          bool
	UpdatedAt       time.Time
}

// Validate for validating StudentEngagement struct
func (s *StudentEngagement) Validate() error {
	return validators.Struct(s)
}

// Evaluate recomputes RiskScore, RiskLevel and AtRisk as of now.
func (s *StudentEngagement) Evaluate(now time.Time) {
	score := 0
	if s.AttendanceRate < lowAttendanceThreshold {
		score += lowAttendancePoints
	}
	if s.EngagementScore < lowEngagementThreshold {
		score += lowEngagementPoints
	}
	if s.LastActivityAt == nil || now.Sub(*s.LastActivityAt) > inactivityThreshold {
		score += inactivityPoints
	}
	if s.MissedSessions > missedSessionThreshold {
		score += missedSessionsPoints
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}

	s.RiskScore = score
	s.RiskLevel = RiskLevelForScore(score)
	s.AtRisk = score >= atRiskRiskScore
}

// RiskLevelForScore maps a dropout risk score to its level.
func RiskLevelForScore(score int) string {
	switch {
	case score >= criticalRiskScore:
		return RiskLevelCritical
	case score >= atRiskRiskScore:
		return RiskLevelHigh
	case score >= mediumRiskScore:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Snapshot returns the audited field values of the record.
func (s *StudentEngagement) Snapshot() map[string]interface{} {
	snapshot := map[string]interface{}{
		"studentName":     s.StudentName,
		"formationTitle":  s.FormationTitle,
		"attendanceRate":  s.AttendanceRate,
		"engagementScore": s.EngagementScore,
		"missedSessions":  s.MissedSessions,
		"lastActivityAt":  nil,
		"riskScore":       s.RiskScore,
		"riskLevel":       s.RiskLevel,
		"atRisk":          s.AtRisk,
	}
	if s.LastActivityAt != nil {
		snapshot["lastActivityAt"] = s.LastActivityAt.UTC().Format(time.RFC3339)
	}
	return snapshot
}
