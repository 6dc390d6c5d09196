package engagement

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"
)

// Report aggregates the engagement records of all students.
type Report struct {
	TotalStudents     int       `json:"total_students"`
	AtRiskCount       int       `json:"at_risk_count"`
	RiskRate          float64   `json:"risk_rate"`
	AverageAttendance float64   `json:"average_attendance"`
	AvgEngagement     float64   `json:"avg_engagement"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// BuildReport aggregates records. Rates and averages are rounded to one
// decimal and are all zero when records is empty.
func BuildReport(records []*StudentEngagement, now time.Time) *Report {
	report := &Report{GeneratedAt: now}
	if len(records) == 0 {
		return report
	}

	var attendance, engagement float64
	for _, record := range records {
		if record.AtRisk {
			report.AtRiskCount++
		}
		attendance += record.AttendanceRate
		engagement += record.EngagementScore
	}

	total := float64(len(records))
	report.TotalStudents = len(records)
	report.RiskRate = utils.RoundTo(float64(report.AtRiskCount)/total*100, 1)
	report.AverageAttendance = utils.RoundTo(attendance/total, 1)
	report.AvgEngagement = utils.RoundTo(engagement/total, 1)
	return report
}

// Dashboard is the admin engagement view.
type Dashboard struct {
	Report     *Report              `json:"report"`
	Compliance *ComplianceScore     `json:"compliance"`
	AtRisk     []*StudentEngagement `json:"at_risk"`
}
