// Package report renders phishing analysis reports for people and for tools.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikey/phish-detector/internal/ports"
)

// Supported output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// ErrUnsupportedFormat is returned for an unknown output format
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the accepted output format names
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}
}

// NewWriter returns the writer for format. colorize only affects text output.
func NewWriter(format string, colorize bool) (ports.ReportWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return NewTextWriter(colorize), nil
	case FormatJSON:
		return NewJSONWriter(), nil
	case FormatYAML, "yml":
		return NewYAMLWriter(), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(), nil
	default:
		return nil, fmt.Errorf("%w: %s (expected one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
	}
}
