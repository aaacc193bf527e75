package core

import (
	"fmt"
	"strings"
	"time"
)

// ThreatLevel is the ordinal risk classification of an analyzed email.
// Levels compare with the usual integer operators: low < medium < high.
type ThreatLevel int

const (
	// ThreatLow means no rule fired.
	ThreatLow ThreatLevel = iota
	// ThreatMedium means at least one phrasing rule fired.
	ThreatMedium
	// ThreatHigh means the suspicious keyword rule fired.
	ThreatHigh
)

// String returns the lowercase name of the level
func (l ThreatLevel) String() string {
	switch l {
	case ThreatLow:
		return "low"
	case ThreatMedium:
		return "medium"
	case ThreatHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText encodes the level as its lowercase name
func (l ThreatLevel) MarshalText() ([]byte, error) {
	if l < ThreatLow || l > ThreatHigh {
		return nil, fmt.Errorf("invalid threat level: %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level from its name
func (l *ThreatLevel) UnmarshalText(text []byte) error {
	level, err := ParseThreatLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseThreatLevel parses a level name, ignoring case and surrounding space
func ParseThreatLevel(s string) (ThreatLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ThreatLow, nil
	case "medium":
		return ThreatMedium, nil
	case "high":
		return ThreatHigh, nil
	default:
		return ThreatLow, fmt.Errorf("unknown threat level: %q", s)
	}
}

// MaxThreatLevel returns the higher of two levels. Rules merge their level
// through it so a verdict can only escalate.
func MaxThreatLevel(a, b ThreatLevel) ThreatLevel {
	if b > a {
		return b
	}
	return a
}

// SuspiciousLink is an anchor whose target matched the link rule
type SuspiciousLink struct {
	DisplayText  string `json:"displayText" yaml:"displayText"`
	ActualURL    string `json:"actualUrl" yaml:"actualUrl"`
	IsSuspicious bool   `json:"isSuspicious" yaml:"isSuspicious"`
	Reason       string `json:"reason" yaml:"reason"`
}

// LinkAnalysis summarizes the anchor tags found in an email
type LinkAnalysis struct {
	TotalLinks      int              `json:"totalLinks" yaml:"totalLinks"`
	SuspiciousLinks []SuspiciousLink `json:"suspiciousLinks" yaml:"suspiciousLinks"`
}

// AnalysisResult is the verdict produced by the heuristic analyzer
type AnalysisResult struct {
	ThreatLevel  ThreatLevel  `json:"threatLevel" yaml:"threatLevel"`
	Confidence   int          `json:"confidence" yaml:"confidence"`
	Reasoning    string       `json:"reasoning" yaml:"reasoning"`
	Indicators   []string     `json:"indicators" yaml:"indicators"`
	LinkAnalysis LinkAnalysis `json:"linkAnalysis" yaml:"linkAnalysis"`
}

// Email represents an email submitted for analysis
type Email struct {
	Source  string              `json:"source" yaml:"source"`
	From    string              `json:"from,omitempty" yaml:"from,omitempty"`
	Subject string              `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body    string              `json:"-" yaml:"-"`
	Headers map[string][]string `json:"-" yaml:"-"`
}

// Text returns the content handed to the analyzer. A parsed subject is kept
// in front of the body so its phrasing is matched as well.
func (e *Email) Text() string {
	if e.Subject == "" {
		return e.Body
	}
	return "Subject: " + e.Subject + "\n\n" + e.Body
}

// Report wraps one analysis result with the details of the run that produced it
type Report struct {
	ID         string         `json:"id" yaml:"id"`
	Source     string         `json:"source" yaml:"source"`
	From       string         `json:"from,omitempty" yaml:"from,omitempty"`
	Subject    string         `json:"subject,omitempty" yaml:"subject,omitempty"`
	AnalyzedAt time.Time      `json:"analyzedAt" yaml:"analyzedAt"`
	Duration   time.Duration  `json:"durationNs" yaml:"durationNs"`
	Result     AnalysisResult `json:"result" yaml:"result"`
}
