package export

import (
	"fmt"
	"strconv"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
)

var recordHeader = []string{
	"Alternant",
	"Formation",
	"Assiduité (%)",
	"Engagement (%)",
	"Sessions manquées",
	"Dernière activité",
	"Score de risque",
	"Niveau de risque",
	"À risque",
}

var riskLevelLabels = map[string]string{
	engagement.RiskLevelLow:      "Faible",
	engagement.RiskLevelMedium:   "Moyen",
	engagement.RiskLevelHigh:     "Élevé",
	engagement.RiskLevelCritical: "Critique",
}

var criterionLabels = map[string]string{
	engagement.CriterionRetention:    "Rétention",
	engagement.CriterionAttendance:   "Assiduité",
	engagement.CriterionEngagement:   "Engagement",
	engagement.CriterionIntervention: "Intervention",
}

func recordRow(r *engagement.StudentEngagement) []string {
	lastActivity := "Non défini"
	if r.LastActivityAt != nil {
		lastActivity = r.LastActivityAt.Format("02/01/2006 15:04")
	}
	atRisk := "Non"
	if r.AtRisk {
		atRisk = "Oui"
	}
	return []string{
		r.StudentName,
		r.FormationTitle,
		formatFloat(r.AttendanceRate),
		formatFloat(r.EngagementScore),
		strconv.Itoa(r.MissedSessions),
		lastActivity,
		strconv.Itoa(r.RiskScore),
		riskLevelLabels[r.RiskLevel],
		atRisk,
	}
}

// summaryRows lists the report and compliance figures as label/value pairs.
func summaryRows(d *engagement.Dashboard) [][2]string {
	if d == nil || d.Report == nil {
		return nil
	}
	rows := [][2]string{
		{"Généré le", d.Report.GeneratedAt.Format("02/01/2006 15:04")},
		{"Alternants suivis", strconv.Itoa(d.Report.TotalStudents)},
		{"Alternants à risque", strconv.Itoa(d.Report.AtRiskCount)},
		{"Taux de risque (%)", formatFloat(d.Report.RiskRate)},
		{"Assiduité moyenne (%)", formatFloat(d.Report.AverageAttendance)},
		{"Engagement moyen (%)", formatFloat(d.Report.AvgEngagement)},
	}
	if d.Compliance != nil {
		rows = append(rows,
			[2]string{"Score Qualiopi", fmt.Sprintf("%d/100", d.Compliance.Score)},
			[2]string{"Niveau Qualiopi", d.Compliance.Level},
		)
		for _, c := range d.Compliance.Criteria {
			rows = append(rows, [2]string{criterionLabels[c.Name], fmt.Sprintf("%d/%d (%s %%)", c.Score, c.Max, formatFloat(c.Value))})
		}
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
