package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_NoTriggers(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Hi Sam, lunch on Thursday?",
		"Quarterly numbers attached. Let me know if anything looks off.",
		"<a href=\"https://example.com/docs\">docs</a>",
	}

	analyzer := NewHeuristicAnalyzer()
	for _, input := range inputs {
		result := analyzer.Analyze(input)
		assert.Equal(t, ThreatLow, result.ThreatLevel, input)
		assert.Equal(t, BaseConfidence, result.Confidence, input)
		assert.Empty(t, result.Indicators, input)
		assert.NotNil(t, result.Indicators, input)
		assert.Equal(t, safeReasoning, result.Reasoning, input)
	}
}

func TestAnalyze_SingleMediumTrigger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input      string
		confidence int
		indicator  string
	}{
		{"This is URGENT, reply today", 45, "Contains urgent language"},
		{"Please verify account details", 50, "Requests account verification"},
		{"Click Here to continue", 35, "Generic call to action"},
		{"A limited time offer just for you", 40, "Limited time offer"},
		{"Dear customer, thanks for shopping", 40, "Non-personalized greeting"},
	}

	analyzer := NewHeuristicAnalyzer()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.indicator, func(t *testing.T) {
			t.Parallel()

			result := analyzer.Analyze(tc.input)
			assert.Equal(t, ThreatMedium, result.ThreatLevel)
			assert.Equal(t, tc.confidence, result.Confidence)
			assert.Equal(t, []string{tc.indicator}, result.Indicators)
			assert.Equal(t, flaggedReasoning, result.Reasoning)
		})
	}
}

func TestAnalyze_SuspiciousForcesHigh(t *testing.T) {
	t.Parallel()

	analyzer := NewHeuristicAnalyzer()

	result := analyzer.Analyze("We noticed Suspicious activity")
	assert.Equal(t, ThreatHigh, result.ThreatLevel)
	assert.Equal(t, 95, result.Confidence)
	assert.Equal(t, []string{"Contains multiple suspicious keywords/phrases"}, result.Indicators)

	// Accumulated confidence is overwritten, not added to.
	result = analyzer.Analyze("urgent: verify account, click here. suspicious")
	assert.Equal(t, ThreatHigh, result.ThreatLevel)
	assert.Equal(t, 95, result.Confidence)
	assert.Equal(t, []string{
		"Contains urgent language",
		"Requests account verification",
		"Generic call to action",
		"Contains multiple suspicious keywords/phrases",
	}, result.Indicators)
}

func TestAnalyze_ConfidenceClamp(t *testing.T) {
	t.Parallel()

	analyzer := NewHeuristicAnalyzer()

	// 20+25+30+15+20+20 = 130
	all := "urgent! verify account, click here for a limited time offer, dear customer"
	result := analyzer.Analyze(all)
	assert.Equal(t, ThreatMedium, result.ThreatLevel)
	assert.Equal(t, MaxConfidence, result.Confidence)
	assert.Len(t, result.Indicators, 5)

	// 20+25+15+20+20 = 100 is still above the cap
	result = analyzer.Analyze("urgent, click here, limited time offer, dear customer")
	assert.Equal(t, MaxConfidence, result.Confidence)
}

func TestAnalyze_IndicatorOrderFollowsRules(t *testing.T) {
	t.Parallel()

	// Phrases appear in reverse rule order in the text.
	result := NewHeuristicAnalyzer().Analyze("dear customer, limited time offer, click here, verify account, urgent")

	expected := make([]string, 0, 5)
	for _, rule := range Rules()[:5] {
		expected = append(expected, rule.Indicator)
	}
	assert.Equal(t, expected, result.Indicators)
}

func TestAnalyze_LinkScan(t *testing.T) {
	t.Parallel()

	analyzer := NewHeuristicAnalyzer()

	t.Run("suspicious link", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(`<a href="http://example.com/suspicious-login">click</a>`)
		require.Equal(t, 1, result.LinkAnalysis.TotalLinks)
		require.Len(t, result.LinkAnalysis.SuspiciousLinks, 1)

		link := result.LinkAnalysis.SuspiciousLinks[0]
		assert.Equal(t, "http://example.com/suspicious-login", link.ActualURL)
		assert.Equal(t, "http://example.com/suspicious-login", link.DisplayText)
		assert.True(t, link.IsSuspicious)
		assert.Equal(t, "Contains suspicious keyword", link.Reason)
	})

	t.Run("no anchors", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze("plain text with http://suspicious.example but no markup")
		assert.Equal(t, 0, result.LinkAnalysis.TotalLinks)
		assert.NotNil(t, result.LinkAnalysis.SuspiciousLinks)
		assert.Empty(t, result.LinkAnalysis.SuspiciousLinks)
	})

	t.Run("quote styles and attributes", func(t *testing.T) {
		t.Parallel()

		input := `<a href='https://a.example/'>a</a>
<a class="btn" target="_blank" href="https://b.example/suspicious">b</a>
<a title="x"	href='https://c.example/suspicious?q=1'>c</a>`
		result := analyzer.Analyze(input)
		assert.Equal(t, 3, result.LinkAnalysis.TotalLinks)
		require.Len(t, result.LinkAnalysis.SuspiciousLinks, 2)
		assert.Equal(t, "https://b.example/suspicious", result.LinkAnalysis.SuspiciousLinks[0].ActualURL)
		assert.Equal(t, "https://c.example/suspicious?q=1", result.LinkAnalysis.SuspiciousLinks[1].ActualURL)
	})

	t.Run("case sensitive", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(`<a href="https://x.example/SUSPICIOUS">x</a> <A href="https://y.example/suspicious">y</A>`)
		assert.Equal(t, 1, result.LinkAnalysis.TotalLinks)
		assert.Empty(t, result.LinkAnalysis.SuspiciousLinks)
		// The lowercased body still trips the keyword rule.
		assert.Equal(t, ThreatHigh, result.ThreatLevel)
	})

	t.Run("mismatched quotes", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(`<a href="https://x.example/suspicious'>x</a>`)
		assert.Equal(t, 0, result.LinkAnalysis.TotalLinks)
	})

	t.Run("href value cannot span lines", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze("<a href=\"https://x.example/\nsuspicious\">x</a>")
		assert.Equal(t, 0, result.LinkAnalysis.TotalLinks)
	})

	t.Run("non-breaking space separator", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze("<a\u00a0href=\"https://x.example/\">x</a>")
		assert.Equal(t, 1, result.LinkAnalysis.TotalLinks)
	})
}

func TestAnalyze_EndToEnd(t *testing.T) {
	t.Parallel()

	input := "Dear Customer, this is urgent, please verify account now. Click here: <a href='http://bad.com/suspicious'>link</a>"
	result := NewHeuristicAnalyzer().Analyze(input)

	assert.Equal(t, ThreatHigh, result.ThreatLevel)
	assert.Equal(t, 95, result.Confidence)
	assert.Equal(t, flaggedReasoning, result.Reasoning)
	assert.Equal(t, []string{
		"Contains urgent language",
		"Requests account verification",
		"Generic call to action",
		"Non-personalized greeting",
		"Contains multiple suspicious keywords/phrases",
	}, result.Indicators)
	assert.Equal(t, 1, result.LinkAnalysis.TotalLinks)
	require.Len(t, result.LinkAnalysis.SuspiciousLinks, 1)
	assert.Equal(t, "http://bad.com/suspicious", result.LinkAnalysis.SuspiciousLinks[0].ActualURL)
	assert.Equal(t, "Contains suspicious keyword", result.LinkAnalysis.SuspiciousLinks[0].Reason)
}

func TestAnalyze_Idempotent(t *testing.T) {
	t.Parallel()

	analyzer := NewHeuristicAnalyzer()
	input := "URGENT dear customer <a href=\"http://x.example/suspicious\">go</a>"

	first, err := json.Marshal(analyzer.Analyze(input))
	require.NoError(t, err)
	second, err := json.Marshal(analyzer.Analyze(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_CaseInsensitivePhrases(t *testing.T) {
	t.Parallel()

	analyzer := NewHeuristicAnalyzer()

	result := analyzer.Analyze("VeRiFy AcCoUnT")
	assert.Equal(t, []string{"Requests account verification"}, result.Indicators)

	// Fullwidth letters lowercase to fullwidth letters and do not match.
	result = analyzer.Analyze("ＵＲＧＥＮＴ")
	assert.Equal(t, ThreatLow, result.ThreatLevel)
	assert.Empty(t, result.Indicators)
}

func TestAnalysisResult_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewHeuristicAnalyzer().Analyze("hello"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"threatLevel": "low",
		"confidence": 20,
		"reasoning": "This email appears to be safe.",
		"indicators": [],
		"linkAnalysis": {"totalLinks": 0, "suspiciousLinks": []}
	}`, string(data))
}

func TestRules_ReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := Rules()
	require.Len(t, rules, 6)
	rules[0].Phrase = "changed"

	assert.Equal(t, "urgent", Rules()[0].Phrase)
	assert.Equal(t, ThreatHigh, Rules()[5].Level)
}
