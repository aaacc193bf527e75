package filter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CliFilter feeds emails from the command line into the detection service
// and writes the resulting reports
type CliFilter struct {
	service     *core.PhishingDetectionService
	writer      ports.ReportWriter
	out         io.Writer
	logger      *zap.Logger
	parseMIME   bool
	concurrency int
}

// NewCliFilter creates a new CLI filter
func NewCliFilter(
	service *core.PhishingDetectionService,
	writer ports.ReportWriter,
	out io.Writer,
	logger *zap.Logger,
	parseMIME bool,
	concurrency int,
) (*CliFilter, error) {
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	return &CliFilter{
		service:     service,
		writer:      writer,
		out:         out,
		logger:      logger,
		parseMIME:   parseMIME,
		concurrency: concurrency,
	}, nil
}

// ReadEmail reads one email from r. In MIME mode the input is parsed as an
// RFC 5322 message, otherwise it is taken verbatim as the body.
func (f *CliFilter) ReadEmail(r io.Reader, source string) (*core.Email, error) {
	if f.parseMIME {
		return parseMessage(r, source)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return &core.Email{Source: source, Body: string(raw)}, nil
}

// ProcessEmail analyzes an email and writes its report
func (f *CliFilter) ProcessEmail(ctx context.Context, email *core.Email) (*core.Report, error) {
	report, err := f.analyze(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := f.writer.Write(f.out, []*core.Report{report}); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return report, nil
}

// ProcessText analyzes text given directly on the command line
func (f *CliFilter) ProcessText(ctx context.Context, source string, text string) (*core.Report, error) {
	email, err := f.ReadEmail(strings.NewReader(text), source)
	if err != nil {
		return nil, err
	}
	return f.ProcessEmail(ctx, email)
}

// ProcessReader reads one email from r and analyzes it
func (f *CliFilter) ProcessReader(ctx context.Context, source string, r io.Reader) (*core.Report, error) {
	f.logger.Info("Reading email", zap.String("source", source))

	email, err := f.ReadEmail(r, source)
	if err != nil {
		return nil, err
	}
	return f.ProcessEmail(ctx, email)
}

// ProcessFiles analyzes the files concurrently and writes all reports once
// every file is done, in the order the paths were given. The first failure
// cancels the remaining work.
func (f *CliFilter) ProcessFiles(ctx context.Context, paths []string) ([]*core.Report, error) {
	f.logger.Info("Starting batch analysis",
		zap.Int("files", len(paths)),
		zap.Int("concurrency", f.concurrency))

	reports := make([]*core.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			email, err := f.readFile(path)
			if err != nil {
				return err
			}

			report, err := f.analyze(ctx, email)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		f.logger.Error("Batch analysis failed", zap.Error(err))
		return nil, err
	}

	if err := f.writer.Write(f.out, reports); err != nil {
		return nil, fmt.Errorf("failed to write reports: %w", err)
	}
	return reports, nil
}

func (f *CliFilter) readFile(path string) (*core.Email, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	f.logger.Debug("Reading email from file", zap.String("file", path))
	return f.ReadEmail(file, path)
}

func (f *CliFilter) analyze(ctx context.Context, email *core.Email) (*core.Report, error) {
	f.logger.Debug("Processing email",
		zap.String("source", email.Source),
		zap.String("sender", email.From),
		zap.Int("body_size", len(email.Body)))

	report, err := f.service.AnalyzeEmail(ctx, email)
	if err != nil {
		f.logger.Debug("Analysis rejected", zap.String("source", email.Source), zap.Error(err))
		return nil, err
	}
	return report, nil
}
