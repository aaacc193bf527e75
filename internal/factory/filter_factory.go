package factory

import (
	"io"

	"github.com/mikey/phish-detector/internal/adapters/filter"
	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/ports"
	"go.uber.org/zap"
)

// FilterFactory creates email filters based on configuration
type FilterFactory struct {
	cfg              *config.Config
	logger           *zap.Logger
	detectionService *core.PhishingDetectionService
	writer           ports.ReportWriter
	out              io.Writer
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(
	cfg *config.Config,
	logger *zap.Logger,
	detectionService *core.PhishingDetectionService,
	writer ports.ReportWriter,
	out io.Writer,
) *FilterFactory {
	return &FilterFactory{
		cfg:              cfg,
		logger:           logger,
		detectionService: detectionService,
		writer:           writer,
		out:              out,
	}
}

// CreateEmailFilter creates the command line email filter
func (f *FilterFactory) CreateEmailFilter() (ports.EmailFilter, error) {
	analysisCfg, err := f.cfg.GetAnalysis()
	if err != nil {
		return nil, err
	}

	return filter.NewCliFilter(
		f.detectionService,
		f.writer,
		f.out,
		f.logger,
		f.cfg.GetInput().ParseMIME,
		analysisCfg.Concurrency,
	)
}
