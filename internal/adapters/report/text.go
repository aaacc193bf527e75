package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mikey/phish-detector/internal/core"
)

// TextWriter renders reports as a terminal threat card
type TextWriter struct {
	levelColors map[core.ThreatLevel]*color.Color
	heading     *color.Color
	alert       *color.Color
	ok          *color.Color
	muted       *color.Color
	tips        *color.Color
}

// NewTextWriter creates a TextWriter. With colorize off the output is plain
// text; otherwise color follows the library's terminal detection.
func NewTextWriter(colorize bool) *TextWriter {
	w := &TextWriter{
		levelColors: map[core.ThreatLevel]*color.Color{
			core.ThreatHigh:   color.New(color.FgRed, color.Bold),
			core.ThreatMedium: color.New(color.FgYellow, color.Bold),
			core.ThreatLow:    color.New(color.FgGreen, color.Bold),
		},
		heading: color.New(color.Bold),
		alert:   color.New(color.FgRed),
		ok:      color.New(color.FgGreen),
		muted:   color.New(color.Faint),
		tips:    color.New(color.FgBlue),
	}

	if !colorize {
		for _, c := range w.all() {
			c.DisableColor()
		}
	}
	return w
}

func (w *TextWriter) all() []*color.Color {
	colors := []*color.Color{w.heading, w.alert, w.ok, w.muted, w.tips}
	for _, c := range w.levelColors {
		colors = append(colors, c)
	}
	return colors
}

// Write renders each report followed by the verification tips once
func (w *TextWriter) Write(out io.Writer, reports []*core.Report) error {
	var b strings.Builder

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(w.heading.Sprintf("=== %s ===", sourceLabel(r)))
			b.WriteString("\n")
		}
		w.writeCard(&b, r.Result)
	}
	w.writeTips(&b)

	_, err := io.WriteString(out, b.String())
	return err
}

func (w *TextWriter) writeCard(b *strings.Builder, result core.AnalysisResult) {
	style := styleFor(result.ThreatLevel)
	levelColor := w.levelColors[result.ThreatLevel]
	if levelColor == nil {
		levelColor = w.heading
	}

	fmt.Fprintf(b, "%s %s\n", style.Emoji, levelColor.Sprint(style.Title))
	fmt.Fprintf(b, "%s  %s\n", levelColor.Sprintf("[%d%% Confidence]", result.Confidence), w.muted.Sprint(ConfidenceExplanation(result)))
	fmt.Fprintf(b, "%s\n\n", style.Description)
	fmt.Fprintf(b, "%s\n\n", result.Reasoning)

	b.WriteString(w.heading.Sprintf("Red Flags Detected (%d)", len(result.Indicators)))
	b.WriteString("\n")
	for _, indicator := range result.Indicators {
		fmt.Fprintf(b, "  %s %s\n", w.alert.Sprint("•"), indicator)
	}

	links := result.LinkAnalysis
	if links.TotalLinks > 0 {
		b.WriteString("\n")
		b.WriteString(w.heading.Sprintf("Link Analysis (%d links found)", links.TotalLinks))
		b.WriteString("\n")
		if len(links.SuspiciousLinks) == 0 {
			fmt.Fprintf(b, "  %s\n", w.ok.Sprint(noSuspiciousLinks))
		} else {
			fmt.Fprintf(b, "  %s\n", w.alert.Sprint("⚠️ Suspicious Links Detected:"))
			for _, link := range links.SuspiciousLinks {
				fmt.Fprintf(b, "    %s\n      %s\n", link.ActualURL, w.alert.Sprint(link.Reason))
			}
		}
	}

	if len(style.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(levelColor.Sprint(style.AdviceHeading))
		b.WriteString("\n")
		for _, rec := range style.Recommendations {
			fmt.Fprintf(b, "  • %s\n", rec)
		}
	}
}

func (w *TextWriter) writeTips(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(w.tips.Sprint(verifySafelyTitle))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s\n", w.ok.Sprint(safeMethodsHeading))
	for _, tip := range safeVerificationMethods {
		fmt.Fprintf(b, "    • %s\n", tip)
	}
	fmt.Fprintf(b, "  %s\n", w.alert.Sprint(neverDoHeading))
	for _, tip := range neverDo {
		fmt.Fprintf(b, "    • %s\n", tip)
	}
}
