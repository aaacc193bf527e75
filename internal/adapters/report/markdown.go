package report

import (
	"io"
	"strconv"

	"github.com/mikey/phish-detector/internal/core"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders reports as GitHub flavored markdown
type MarkdownWriter struct{}

// NewMarkdownWriter creates a MarkdownWriter
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Write renders one section per report followed by the verification tips
func (w *MarkdownWriter) Write(out io.Writer, reports []*core.Report) error {
	md := markdown.NewMarkdown(out)
	md.H1("Phishing Analysis Report")
	md.PlainText("")

	for _, r := range reports {
		w.writeReport(md, r)
	}
	w.writeTips(md)

	return md.Build()
}

func (w *MarkdownWriter) writeReport(md *markdown.Markdown, r *core.Report) {
	result := r.Result
	style := styleFor(result.ThreatLevel)

	md.H2(style.Emoji + " " + style.Title)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + sourceLabel(r) + "`"},
			{"Threat Level", result.ThreatLevel.String()},
			{"Confidence", strconv.Itoa(result.Confidence) + "%"},
			{"Assessment", ConfidenceExplanation(result)},
			{"Analyzed At", r.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	switch result.ThreatLevel {
	case core.ThreatHigh:
		md.Cautionf("%s %s", style.Description, result.Reasoning)
	case core.ThreatMedium:
		md.Warningf("%s %s", style.Description, result.Reasoning)
	default:
		md.Tip(style.Description + " " + result.Reasoning)
	}
	md.PlainText("")

	md.H3("Red Flags Detected (" + strconv.Itoa(len(result.Indicators)) + ")")
	md.PlainText("")
	if len(result.Indicators) > 0 {
		md.BulletList(result.Indicators...)
		md.PlainText("")
	}

	if result.LinkAnalysis.TotalLinks > 0 {
		w.writeLinks(md, result.LinkAnalysis)
	}

	if len(style.Recommendations) > 0 {
		md.H3(style.AdviceHeading)
		md.PlainText("")
		md.BulletList(style.Recommendations...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeLinks(md *markdown.Markdown, links core.LinkAnalysis) {
	md.H3("Link Analysis (" + strconv.Itoa(links.TotalLinks) + " links found)")
	md.PlainText("")

	if len(links.SuspiciousLinks) == 0 {
		md.PlainText(noSuspiciousLinks)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(links.SuspiciousLinks))
	for i, link := range links.SuspiciousLinks {
		rows[i] = []string{"`" + link.ActualURL + "`", link.Reason}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeTips(md *markdown.Markdown) {
	md.H2(verifySafelyTitle)
	md.PlainText("")
	md.PlainText(safeMethodsHeading)
	md.PlainText("")
	md.BulletList(safeVerificationMethods...)
	md.PlainText("")
	md.PlainText(neverDoHeading)
	md.PlainText("")
	md.BulletList(neverDo...)
}
