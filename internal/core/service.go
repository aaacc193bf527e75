package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyInput is returned when there is no email text to analyze
var ErrEmptyInput = errors.New("please enter email text to analyze")

// TextProcessor prepares raw text before analysis
type TextProcessor interface {
	ProcessText(text string, maxSize int) string
}

// PhishingDetectionService validates submitted emails and runs the analyzer
type PhishingDetectionService struct {
	analyzer       Analyzer
	textProcessor  TextProcessor
	logger         *zap.Logger
	simulatedDelay time.Duration
	maxInputSize   int
	cache          ResultCache
	cacheTTL       time.Duration
	now            func() time.Time
}

// NewPhishingDetectionService creates a new phishing detection service
func NewPhishingDetectionService(
	analyzer Analyzer,
	textProcessor TextProcessor,
	logger *zap.Logger,
	simulatedDelay time.Duration,
	maxInputSize int,
) *PhishingDetectionService {
	return &PhishingDetectionService{
		analyzer:       analyzer,
		textProcessor:  textProcessor,
		logger:         logger,
		simulatedDelay: simulatedDelay,
		maxInputSize:   maxInputSize,
		now:            time.Now,
	}
}

// WithCache makes the service reuse verdicts for text it has already seen
// within ttl. Cache hits skip the simulated delay.
func (s *PhishingDetectionService) WithCache(cache ResultCache, ttl time.Duration) *PhishingDetectionService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// Validate rejects emails with nothing but whitespace to analyze
func (s *PhishingDetectionService) Validate(email *Email) error {
	if email == nil || strings.TrimSpace(email.Text()) == "" {
		return ErrEmptyInput
	}
	return nil
}

// AnalyzeEmail checks an email for phishing indicators
func (s *PhishingDetectionService) AnalyzeEmail(ctx context.Context, email *Email) (*Report, error) {
	if err := s.Validate(email); err != nil {
		return nil, err
	}

	text := email.Text()
	if s.textProcessor != nil {
		text = s.textProcessor.ProcessText(text, s.maxInputSize)
	}

	startTime := s.now()
	result, err := s.analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analysis of %s interrupted: %w", email.Source, err)
	}

	report := &Report{
		ID:         uuid.NewString(),
		Source:     email.Source,
		From:       email.From,
		Subject:    email.Subject,
		AnalyzedAt: startTime,
		Duration:   s.now().Sub(startTime),
		Result:     result,
	}

	s.logger.Info("Email analyzed",
		zap.String("id", report.ID),
		zap.String("source", report.Source),
		zap.Stringer("threat_level", result.ThreatLevel),
		zap.Int("confidence", result.Confidence),
		zap.Int("indicators", len(result.Indicators)),
		zap.Int("links", result.LinkAnalysis.TotalLinks),
		zap.Int("suspicious_links", len(result.LinkAnalysis.SuspiciousLinks)),
		zap.Duration("duration", report.Duration))

	return report, nil
}

// analyze returns the cached verdict for text or runs the analyzer
func (s *PhishingDetectionService) analyze(ctx context.Context, text string) (AnalysisResult, error) {
	if s.cache == nil {
		if err := s.wait(ctx); err != nil {
			return AnalysisResult{}, err
		}
		return s.analyzer.Analyze(text), nil
	}

	key := cacheKey(text)
	if result, ok := s.cache.Get(key); ok {
		s.logger.Debug("Cache hit", zap.String("key", key[:12]))
		return result, ctx.Err()
	}

	if err := s.wait(ctx); err != nil {
		return AnalysisResult{}, err
	}
	result := s.analyzer.Analyze(text)
	s.cache.Set(key, result, s.cacheTTL)
	return result, nil
}

// cacheKey identifies processed text without keeping it in memory twice
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// wait sleeps for the simulated inference delay unless ctx ends first
func (s *PhishingDetectionService) wait(ctx context.Context) error {
	if s.simulatedDelay <= 0 {
		return ctx.Err()
	}

	s.logger.Debug("Simulating analysis latency", zap.Duration("delay", s.simulatedDelay))

	timer := time.NewTimer(s.simulatedDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
