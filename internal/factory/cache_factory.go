package factory

import (
	"github.com/mikey/phish-detector/internal/adapters/cache"
	"github.com/mikey/phish-detector/internal/config"
	"github.com/mikey/phish-detector/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates verdict caches based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateResultCache creates the verdict cache, or nil when caching is disabled
func (f *CacheFactory) CreateResultCache() (core.ResultCache, error) {
	cacheCfg, err := f.cfg.GetCache()
	if err != nil {
		return nil, err
	}
	if !cacheCfg.Enabled {
		f.logger.Debug("Verdict cache disabled")
		return nil, nil
	}

	f.logger.Debug("Created in-memory verdict cache",
		zap.Duration("ttl", cacheCfg.TTL),
		zap.Duration("cleanup_interval", cacheCfg.CleanupInterval))
	return cache.NewMemoryCache(f.logger, cacheCfg.CleanupInterval), nil
}
