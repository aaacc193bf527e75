package report

import (
	"encoding/json"
	"io"

	"github.com/mikey/phish-detector/internal/core"
)

// JSONWriter renders reports as indented JSON
type JSONWriter struct{}

// NewJSONWriter creates a JSONWriter
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write emits a single report as an object and a batch as an array
func (w *JSONWriter) Write(out io.Writer, reports []*core.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	if reports == nil {
		reports = []*core.Report{}
	}
	return enc.Encode(reports)
}
