package report

import (
	"fmt"

	"github.com/mikey/phish-detector/internal/core"
)

// threatStyle holds the per-level wording shared by all human readable formats
type threatStyle struct {
	Emoji           string
	Title           string
	Description     string
	AdviceHeading   string
	Recommendations []string
}

var threatStyles = map[core.ThreatLevel]threatStyle{
	core.ThreatHigh: {
		Emoji:         "🔴",
		Title:         "High Risk - Likely Phishing",
		Description:   "This email shows strong indicators of a phishing attempt.",
		AdviceHeading: "⚠️ Security Recommendations",
		Recommendations: []string{
			"Do not click any links in this email",
			"Do not download attachments",
			"Do not provide personal information",
			"Report this email as spam/phishing",
			"Verify with the supposed sender through official channels",
		},
	},
	core.ThreatMedium: {
		Emoji:         "🟡",
		Title:         "Medium Risk - Suspicious",
		Description:   "This email has some characteristics that warrant caution.",
		AdviceHeading: "🔍 Proceed with Caution",
		Recommendations: []string{
			"Verify sender identity through official channels",
			"Hover over links to check destinations before clicking",
			"Be wary of urgent requests for personal information",
			"When in doubt, contact the organization directly",
		},
	},
	core.ThreatLow: {
		Emoji:       "🟢",
		Title:       "Low Risk - Appears Safe",
		Description: "This email appears relatively safe with minimal red flags.",
	},
}

func styleFor(level core.ThreatLevel) threatStyle {
	if style, ok := threatStyles[level]; ok {
		return style
	}
	return threatStyles[core.ThreatLow]
}

const (
	safeMethodsHeading = "✓ Safe verification methods:"
	neverDoHeading     = "✗ Never do this:"
	noSuspiciousLinks  = "✓ No suspicious links detected in this email"
	verifySafelyTitle  = "How to Verify Safely"
)

var safeVerificationMethods = []string{
	"Contact the organization directly using official phone numbers or websites",
	"Log into your account through the official website (not email links)",
	"Call the phone number on your bank card or official statements",
	"Check the sender's email address carefully for misspellings",
	`Look for typosquatting domains (e.g., "m1crosoft.com" vs "microsoft.com")`,
}

var neverDo = []string{
	"Click links in suspicious emails",
	"Download unexpected attachments",
	"Provide passwords, SSN, or financial info via email",
	"Trust urgent deadline pressure tactics",
	"Use shortened URLs without knowing the destination",
}

// ConfidenceExplanation describes the confidence score in words
func ConfidenceExplanation(result core.AnalysisResult) string {
	count := len(result.Indicators)
	switch {
	case result.Confidence >= 85:
		return fmt.Sprintf("Very confident - %d strong indicators found", count)
	case result.Confidence >= 70:
		return fmt.Sprintf("Confident - %d indicators detected", count)
	case result.Confidence >= 55:
		return fmt.Sprintf("Moderately confident - %d indicators present", count)
	default:
		return fmt.Sprintf("Less confident - %d indicators available", count)
	}
}

// sourceLabel names a report in batch output
func sourceLabel(r *core.Report) string {
	if r.Subject != "" {
		return fmt.Sprintf("%s (%s)", r.Source, r.Subject)
	}
	return r.Source
}
