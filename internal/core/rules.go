package core

import "strings"

const (
	// BaseConfidence is the confidence of a verdict before any rule fires
	BaseConfidence = 20
	// MaxConfidence caps the reported confidence
	MaxConfidence = 99

	suspiciousKeyword = "suspicious"
)

// Rule is a single phrase check. When Phrase occurs in the lowercased email
// text the rule raises the level to Level, records Indicator, and adjusts the
// running confidence: by Delta, or to Fixed when Fixed is non-zero.
type Rule struct {
	Phrase    string
	Level     ThreatLevel
	Delta     int
	Fixed     int
	Indicator string
}

// Matches reports whether the rule fires for already lowercased text
func (r Rule) Matches(lowered string) bool {
	return strings.Contains(lowered, r.Phrase)
}

// apply folds the rule's effect into the accumulated result
func (r Rule) apply(acc AnalysisResult) AnalysisResult {
	acc.ThreatLevel = MaxThreatLevel(acc.ThreatLevel, r.Level)
	if r.Fixed != 0 {
		acc.Confidence = r.Fixed
	} else {
		acc.Confidence += r.Delta
	}
	acc.Indicators = append(acc.Indicators, r.Indicator)
	return acc
}

// Evaluation order matters: the high rule overwrites whatever confidence the
// medium rules accumulated, so it has to stay last.
var defaultRules = []Rule{
	{Phrase: "urgent", Level: ThreatMedium, Delta: 25, Indicator: "Contains urgent language"},
	{Phrase: "verify account", Level: ThreatMedium, Delta: 30, Indicator: "Requests account verification"},
	{Phrase: "click here", Level: ThreatMedium, Delta: 15, Indicator: "Generic call to action"},
	{Phrase: "limited time offer", Level: ThreatMedium, Delta: 20, Indicator: "Limited time offer"},
	{Phrase: "dear customer", Level: ThreatMedium, Delta: 20, Indicator: "Non-personalized greeting"},
	{Phrase: suspiciousKeyword, Level: ThreatHigh, Fixed: 95, Indicator: "Contains multiple suspicious keywords/phrases"},
}

// Rules returns a copy of the rule table in evaluation order
func Rules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
