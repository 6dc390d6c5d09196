package export

import (
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Synthèse"
	recordsSheet = "Alternants"
)

type xlsxExporter struct{}

// NewXLSXExporter creates an Exporter producing a workbook with a summary
// sheet and a sheet listing every student.
func NewXLSXExporter() engagement.Exporter {
	return xlsxExporter{}
}

func (xlsxExporter) Format() string { return engagement.ExportFormatXLSX }

func (xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxExporter) Export(data *engagement.ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, row := range summaryRows(data.Dashboard) {
		if err := f.SetSheetRow(summarySheet, cell(1, i+1), &[]interface{}{row[0], row[1]}); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(recordsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	header := make([]interface{}, len(recordHeader))
	for i, h := range recordHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(recordsSheet, "A1", cell(len(recordHeader), 1), bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, record := range data.Records {
		text := recordRow(record)
		row := []interface{}{
			record.StudentName,
			record.FormationTitle,
			record.AttendanceRate,
			record.EngagementScore,
			record.MissedSessions,
			text[5],
			record.RiskScore,
			text[7],
			text[8],
		}
		if err := f.SetSheetRow(recordsSheet, cell(1, i+2), &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
