package core

import "time"

// Analyzer defines the interface for producing a verdict from email text
type Analyzer interface {
	// Analyze scores the text. Implementations must be total over all strings.
	Analyze(emailText string) AnalysisResult
}

// ResultCache remembers verdicts for text that was already analyzed
type ResultCache interface {
	Get(key string) (AnalysisResult, bool)
	Set(key string, result AnalysisResult, ttl time.Duration)
}
