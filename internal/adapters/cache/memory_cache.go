package cache

import (
	"slices"
	"sync"
	"time"

	"github.com/mikey/phish-detector/internal/core"
	"go.uber.org/zap"
)

type entry struct {
	result    core.AnalysisResult
	expiresAt time.Time
}

// MemoryCache keeps verdicts in process memory for the lifetime of one run
type MemoryCache struct {
	entries map[string]entry
	mu      sync.RWMutex
	logger  *zap.Logger
	now     func() time.Time
	stopCh  chan struct{}
	stop    sync.Once
}

// NewMemoryCache creates a new in-memory cache. A positive cleanupFreq starts
// a background sweep of expired entries until Stop is called.
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	cache := &MemoryCache{
		entries: make(map[string]entry),
		logger:  logger,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	if cleanupFreq > 0 {
		go cache.startCleanupTask(cleanupFreq)
	}

	return cache
}

// Get returns the cached verdict for key unless it is missing or expired
func (c *MemoryCache) Get(key string) (core.AnalysisResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return core.AnalysisResult{}, false
	}
	return clone(e.result), true
}

// Set stores a verdict for ttl
func (c *MemoryCache) Set(key string, result core.AnalysisResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		result:    clone(result),
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes a cache entry
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Cleanup removes expired entries
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expiredCount := 0

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			expiredCount++
		}
	}

	c.logger.Debug("Cleaned up expired cache entries", zap.Int("expired_count", expiredCount))
}

func (c *MemoryCache) startCleanupTask(freq time.Duration) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// Stop ends the background cleanup task. It is safe to call more than once.
func (c *MemoryCache) Stop() {
	c.stop.Do(func() { close(c.stopCh) })
}

// clone copies the slices so callers never share backing arrays with the cache
func clone(result core.AnalysisResult) core.AnalysisResult {
	result.Indicators = slices.Clone(result.Indicators)
	result.LinkAnalysis.SuspiciousLinks = slices.Clone(result.LinkAnalysis.SuspiciousLinks)
	return result
}
