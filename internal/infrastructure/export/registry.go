package export

import (
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
)

// Registry looks exporters up by format.
type Registry map[string]engagement.Exporter

// NewRegistry registers the CSV, XLSX and PDF exporters.
func NewRegistry() Registry {
	r := Registry{}
	for _, e := range []engagement.Exporter{NewCSVExporter(), NewXLSXExporter(), NewPDFExporter()} {
		r[e.Format()] = e
	}
	return r
}

// Get returns the exporter for format or ErrUnsupportedFormat.
func (r Registry) Get(format string) (engagement.Exporter, error) {
	e, ok := r[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engagement.ErrUnsupportedFormat, format)
	}
	return e, nil
}
