//go:build unit
// +build unit

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/xuri/excelize/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *engagement.ExportData {
	now := time.Date(2025, 4, 14, 8, 30, 0, 0, time.UTC)
	lastActivity := now.Add(-48 * time.Hour)
	records := []*engagement.StudentEngagement{
		{StudentName: "Léa Petit", FormationTitle: "BTS MCO", AttendanceRate: 92.5, EngagementScore: 81, LastActivityAt: &lastActivity},
		{StudentName: "Hugo Roux", FormationTitle: "BTS NDRC", AttendanceRate: 55, EngagementScore: 35, MissedSessions: 6},
	}
	for _, r := range records {
		r.Evaluate(now)
	}
	report := engagement.BuildReport(records, now)
	return &engagement.ExportData{
		Dashboard: &engagement.Dashboard{Report: report, Compliance: engagement.CalculateComplianceScore(report)},
		Records:   records,
	}
}

func TestCSVExporter(t *testing.T) {
	out, err := NewCSVExporter().Export(testData())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("\ufeff")))

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\ufeff")))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, recordHeader, rows[0])
	assert.Equal(t, []string{"Léa Petit", "BTS MCO", "92.5", "81", "0", "12/04/2025 08:30", "0", "Faible", "Non"}, rows[1])
	assert.Equal(t, []string{"Hugo Roux", "BTS NDRC", "55", "35", "6", "Non défini", "100", "Critique", "Oui"}, rows[2])
}

func TestXLSXExporter(t *testing.T) {
	out, err := NewXLSXExporter().Export(testData())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, recordsSheet}, f.GetSheetList())

	name, err := f.GetCellValue(recordsSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Hugo Roux", name)

	score, err := f.GetCellValue(recordsSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "100", score)

	label, err := f.GetCellValue(summarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alternants suivis", label)
	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestPDFExporter(t *testing.T) {
	out, err := NewPDFExporter().Export(testData())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	for _, format := range []string{engagement.ExportFormatCSV, engagement.ExportFormatXLSX, engagement.ExportFormatPDF} {
		e, err := registry.Get(format)
		require.NoError(t, err)
		assert.Equal(t, format, e.Format())
		assert.NotEmpty(t, e.ContentType())
	}

	_, err := registry.Get("docx")
	assert.ErrorIs(t, err, engagement.ErrUnsupportedFormat)
}
