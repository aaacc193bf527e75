package core

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	safeReasoning    = "This email appears to be safe."
	flaggedReasoning = "This email was flagged due to several suspicious characteristics."
)

// HeuristicAnalyzer scores email text against a fixed list of phrase rules
// and scans its anchor tags. It holds no mutable state and is safe for
// concurrent use.
type HeuristicAnalyzer struct {
	rules []Rule
}

// NewHeuristicAnalyzer creates an analyzer using the default rule table
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{rules: Rules()}
}

// Analyze produces a verdict for the given text. It never fails; rejecting
// empty input is left to the caller.
func (a *HeuristicAnalyzer) Analyze(emailText string) AnalysisResult {
	// A Caser carries state between calls, so each analysis gets its own.
	lowered := cases.Lower(language.Und).String(emailText)

	acc := AnalysisResult{
		ThreatLevel: ThreatLow,
		Confidence:  BaseConfidence,
		Indicators:  make([]string, 0, len(a.rules)),
	}
	for _, rule := range a.rules {
		if rule.Matches(lowered) {
			acc = rule.apply(acc)
		}
	}

	if acc.Confidence > MaxConfidence {
		acc.Confidence = MaxConfidence
	}

	acc.Reasoning = flaggedReasoning
	if acc.ThreatLevel == ThreatLow {
		acc.Reasoning = safeReasoning
	}

	acc.LinkAnalysis = scanLinks(emailText)
	return acc
}
