package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
)

type csvExporter struct{}

// NewCSVExporter creates an Exporter writing semicolon separated values, the
// layout French spreadsheet software opens directly.
func NewCSVExporter() engagement.Exporter {
	return csvExporter{}
}

func (csvExporter) Format() string { return engagement.ExportFormatCSV }

func (csvExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (csvExporter) Export(data *engagement.ExportData) ([]byte, error) {
	var buf bytes.Buffer
	// UTF-8 byte order mark so accents survive spreadsheet import.
	buf.WriteString("\ufeff")

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(recordHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, record := range data.Records {
		if err := w.Write(recordRow(record)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
