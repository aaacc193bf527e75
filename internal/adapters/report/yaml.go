package report

import (
	"fmt"
	"io"

	"github.com/mikey/phish-detector/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLWriter renders reports as a YAML document
type YAMLWriter struct{}

// NewYAMLWriter creates a YAMLWriter
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Write emits a single report as a mapping and a batch as a sequence
func (w *YAMLWriter) Write(out io.Writer, reports []*core.Report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	var doc any = reports
	if len(reports) == 1 {
		doc = reports[0]
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return enc.Close()
}
