package engagement

import "github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"

// Compliance levels
const (
	ComplianceExcellent    = "Excellent"
	ComplianceSatisfactory = "Satisfaisant"
	ComplianceAcceptable   = "Acceptable"
	ComplianceToImprove    = "À améliorer"
)

// Criterion names
const (
	CriterionRetention    = "retention"
	CriterionAttendance   = "attendance"
	CriterionEngagement   = "engagement"
	CriterionIntervention = "intervention"
)

const criterionMaxScore = 25

// CriterionScore is the contribution of one Qualiopi indicator.
type CriterionScore struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Score int     `json:"score"`
	Max   int     `json:"max"`
}

// ComplianceScore is the Qualiopi compliance estimate derived from a Report.
type ComplianceScore struct {
	Score      int              `json:"score"`
	Percentage float64          `json:"percentage"`
	Level      string           `json:"level"`
	Criteria   []CriterionScore `json:"criteria"`
}

type thresholds struct {
	high, mid, low float64
}

var (
	defaultThresholds    = thresholds{high: 85, mid: 75, low: 65}
	engagementThresholds = thresholds{high: 70, mid: 60, low: 50}
)

func (t thresholds) score(value float64) int {
	switch {
	case value >= t.high:
		return 25
	case value >= t.mid:
		return 20
	case value >= t.low:
		return 15
	default:
		return 10
	}
}

// CalculateComplianceScore scores retention, attendance, engagement and
// intervention out of 25 each.
func CalculateComplianceScore(report *Report) *ComplianceScore {
	intervention := 0.0
	if report.TotalStudents > 0 {
		intervention = float64(report.TotalStudents-report.AtRiskCount) / float64(report.TotalStudents) * 100
	}

	criteria := []CriterionScore{
		newCriterion(CriterionRetention, 100-report.RiskRate, defaultThresholds),
		newCriterion(CriterionAttendance, report.AverageAttendance, defaultThresholds),
		newCriterion(CriterionEngagement, report.AvgEngagement, engagementThresholds),
		newCriterion(CriterionIntervention, intervention, defaultThresholds),
	}

	total := 0
	for _, c := range criteria {
		total += c.Score
	}

	return &ComplianceScore{
		Score:      total,
		Percentage: float64(total),
		Level:      ComplianceLevel(float64(total)),
		Criteria:   criteria,
	}
}

// ComplianceLevel maps a compliance percentage to its label.
func ComplianceLevel(percentage float64) string {
	switch {
	case percentage >= 85:
		return ComplianceExcellent
	case percentage >= 75:
		return ComplianceSatisfactory
	case percentage >= 65:
		return ComplianceAcceptable
	default:
		return ComplianceToImprove
	}
}

func newCriterion(name string, value float64, t thresholds) CriterionScore {
	return CriterionScore{
		Name:  name,
		Value: utils.RoundTo(value, 1),
		Score: t.score(value),
		Max:   criterionMaxScore,
	}
}
