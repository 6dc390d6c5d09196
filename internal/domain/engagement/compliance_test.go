//go:build unit
// +build unit

package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateComplianceScore(t *testing.T) {
	tests := []struct {
		name      string
		report    Report
		wantScore int
		wantLevel string
	}{
		{
			name:      "excellent",
			report:    Report{TotalStudents: 20, AtRiskCount: 1, RiskRate: 5, AverageAttendance: 92, AvgEngagement: 75},
			wantScore: 100,
			wantLevel: ComplianceExcellent,
		},
		{
			name:      "satisfying",
			report:    Report{TotalStudents: 10, AtRiskCount: 2, RiskRate: 20, AverageAttendance: 78, AvgEngagement: 62},
			wantScore: 80,
			wantLevel: ComplianceSatisfactory,
		},
		{
			name:      "acceptable",
			report:    Report{TotalStudents: 10, AtRiskCount: 2, RiskRate: 20, AverageAttendance: 70, AvgEngagement: 55},
			wantScore: 70,
			wantLevel: ComplianceAcceptable,
		},
		{
			name:      "third band everywhere",
			report:    Report{TotalStudents: 10, AtRiskCount: 3, RiskRate: 30, AverageAttendance: 70, AvgEngagement: 55},
			wantScore: 60,
			wantLevel: ComplianceToImprove,
		},
		{
			name:      "poor",
			report:    Report{TotalStudents: 10, AtRiskCount: 6, RiskRate: 60, AverageAttendance: 40, AvgEngagement: 20},
			wantScore: 40,
			wantLevel: ComplianceToImprove,
		},
		{
			name:      "no students",
			report:    Report{},
			wantScore: 25 + 10 + 10 + 10,
			wantLevel: ComplianceToImprove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := tt.report
			result := CalculateComplianceScore(&report)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, float64(result.Score), result.Percentage)
			assert.Equal(t, tt.wantLevel, result.Level)
			require.Len(t, result.Criteria, 4)
		})
	}
}

func TestCalculateComplianceScore_Criteria(t *testing.T) {
	report := &Report{TotalStudents: 8, AtRiskCount: 2, RiskRate: 25, AverageAttendance: 66, AvgEngagement: 61}

	result := CalculateComplianceScore(report)

	assert.Equal(t, []CriterionScore{
		{Name: CriterionRetention, Value: 75, Score: 20, Max: 25},
		{Name: CriterionAttendance, Value: 66, Score: 15, Max: 25},
		{Name: CriterionEngagement, Value: 61, Score: 20, Max: 25},
		{Name: CriterionIntervention, Value: 75, Score: 20, Max: 25},
	}, result.Criteria)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, ComplianceSatisfactory, result.Level)
}

func TestComplianceLevel_Monotonic(t *testing.T) {
	rank := map[string]int{ComplianceToImprove: 0, ComplianceAcceptable: 1, ComplianceSatisfactory: 2, ComplianceExcellent: 3}
	previous := 0
	for p := 0; p <= 100; p++ {
		current := rank[ComplianceLevel(float64(p))]
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}
