package factory

import (
	"github.com/mikey/phish-detector/internal/adapters/report"
	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/ports"
	"go.uber.org/zap"
)

// WriterFactory creates report writers based on configuration
type WriterFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewWriterFactory creates a new writer factory
func NewWriterFactory(cfg *config.Config, logger *zap.Logger) *WriterFactory {
	return &WriterFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReportWriter creates the writer for the configured output format
func (f *WriterFactory) CreateReportWriter() (ports.ReportWriter, error) {
	output := f.cfg.GetOutput()

	writer, err := report.NewWriter(output.Format, !output.NoColor)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Created report writer",
		zap.String("format", output.Format),
		zap.Bool("color", !output.NoColor))
	return writer, nil
}
