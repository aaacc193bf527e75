package factory

import (
	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/utils"
	"go.uber.org/zap"
)

// ServiceFactory creates the phishing detection service
type ServiceFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	resultCache   core.ResultCache
}

// NewServiceFactory creates a new service factory
func NewServiceFactory(
	cfg *config.Config,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
	resultCache core.ResultCache,
) *ServiceFactory {
	return &ServiceFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
		resultCache:   resultCache,
	}
}

// CreateDetectionService creates a detection service backed by the heuristic analyzer
func (f *ServiceFactory) CreateDetectionService() (*core.PhishingDetectionService, error) {
	analysisCfg, err := f.cfg.GetAnalysis()
	if err != nil {
		return nil, err
	}

	if analysisCfg.SimulatedDelay > 0 {
		f.logger.Info("Simulated analysis latency enabled", zap.Duration("delay", analysisCfg.SimulatedDelay))
	}

	service := core.NewPhishingDetectionService(
		core.NewHeuristicAnalyzer(),
		f.textProcessor,
		f.logger,
		analysisCfg.SimulatedDelay,
		analysisCfg.MaxInputSize,
	)

	if f.resultCache != nil {
		cacheCfg, err := f.cfg.GetCache()
		if err != nil {
			return nil, err
		}
		service.WithCache(f.resultCache, cacheCfg.TTL)
	}
	return service, nil
}
