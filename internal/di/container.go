package di

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/factory"
	"github.com/mikey/phish-detector/internal/logging"
	"github.com/mikey/phish-detector/internal/ports"
	"github.com/mikey/phish-detector/internal/utils"
)

// CLIOptions carries what the command line layer knows before the
// container is built
type CLIOptions struct {
	// ConfigFile is an explicit config path, empty to search the defaults
	ConfigFile string
	// Flags are bound over file and environment values when set
	Flags *pflag.FlagSet
	// Out receives rendered reports, stdout when nil
	Out io.Writer
}

// BuildContainer creates and configures a dependency injection container
func BuildContainer(opts CLIOptions) (*dig.Container, error) {
	container := dig.New()

	// Register options
	if err := container.Provide(func() CLIOptions { return opts }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(opts CLIOptions) (*config.Config, error) {
		cfg, err := config.New(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if opts.Flags != nil {
			if err := cfg.BindFlags(opts.Flags); err != nil {
				return nil, err
			}
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(cfg *config.Config) (*zap.Logger, error) {
		logger, err := logging.InitLogger(cfg)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Info("Loaded configuration from file", zap.String("file", used))
		}
		return logger, nil
	}); err != nil {
		return nil, err
	}

	// Register report output
	if err := container.Provide(func(opts CLIOptions) io.Writer {
		if opts.Out == nil {
			return os.Stdout
		}
		return opts.Out
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewServiceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewWriterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register verdict cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.ResultCache, error) {
		return f.CreateResultCache()
	}); err != nil {
		return nil, err
	}

	// Register detection service
	if err := container.Provide(func(f *factory.ServiceFactory) (*core.PhishingDetectionService, error) {
		return f.CreateDetectionService()
	}); err != nil {
		return nil, err
	}

	// Register report writer
	if err := container.Provide(func(f *factory.WriterFactory) (ports.ReportWriter, error) {
		return f.CreateReportWriter()
	}); err != nil {
		return nil, err
	}

	// Register email filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.EmailFilter, error) {
		return f.CreateEmailFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
