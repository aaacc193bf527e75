package ports

import (
	"io"

	"github.com/mikey/phish-detector/internal/core"
)

// ReportWriter renders analysis reports in one output format
type ReportWriter interface {
	// Write renders the reports to w. A single report and a batch may be
	// laid out differently.
	Write(w io.Writer, reports []*core.Report) error
}
