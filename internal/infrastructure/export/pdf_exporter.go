package export

import (
	"bytes"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/go-pdf/fpdf"
)

var pdfColumnWidths = []float64{45, 45, 22, 22, 22, 32, 20, 25, 17}

type pdfExporter struct{}

// NewPDFExporter creates an Exporter producing a landscape A4 report.
func NewPDFExporter() engagement.Exporter {
	return pdfExporter{}
}

func (pdfExporter) Format() string { return engagement.ExportFormatPDF }

func (pdfExporter) ContentType() string { return "application/pdf" }

func (pdfExporter) Export(data *engagement.ExportData) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Tableau de bord engagement", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Suivi de l'engagement des alternants"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summaryRows(data.Dashboard) {
		pdf.CellFormat(70, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range recordHeader {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, record := range data.Records {
		for i, v := range recordRow(record) {
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
