package ports

import (
	"context"
	"io"

	"github.com/mikey/phish-detector/internal/core"
)

// EmailFilter defines the interface for feeding emails into the detection service
type EmailFilter interface {
	// ProcessEmail analyzes an already parsed email and writes its report
	ProcessEmail(ctx context.Context, email *core.Email) (*core.Report, error)

	// ProcessText analyzes text supplied directly by the user
	ProcessText(ctx context.Context, source string, text string) (*core.Report, error)

	// ProcessReader reads one email from r and analyzes it
	ProcessReader(ctx context.Context, source string, r io.Reader) (*core.Report, error)

	// ProcessFiles analyzes every file and writes the reports in input order
	ProcessFiles(ctx context.Context, paths []string) ([]*core.Report, error)
}
