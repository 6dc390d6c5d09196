package engagement

import (
	"fmt"
	"time"
)

// Export formats
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

// ExportFile is a rendered engagement export ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	// Location is the archive URI when the export was also archived.
	Location string
}

// ExportData is the input handed to an Exporter.
type ExportData struct {
	Dashboard *Dashboard
	Records   []*StudentEngagement
}

// ExportFilename names an export in format generated at now.
func ExportFilename(now time.Time, format string) string {
	return fmt.Sprintf("engagement-%s.%s", now.Format("20060102-150405"), format)
}
