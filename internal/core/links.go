package core

import (
	"regexp"
	"strings"
)

const suspiciousLinkReason = "Contains suspicious keyword"

// jsSpace is the ECMAScript \s class. RE2's \s only covers ASCII whitespace,
// and anchors pasted from rich text often carry non-breaking spaces.
const jsSpace = `[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`

// A quoted href value may not span a line terminator.
const lineTerminators = `\r\n\x{2028}\x{2029}`

// anchorPattern finds <a ... href="URL"> with either quote style. The URL is
// captured in group 1 (double quotes) or group 2 (single quotes).
var anchorPattern = regexp.MustCompile(
	`<a` + jsSpace + `+(?:[^>]*?` + jsSpace + `+)?href=(?:"([^"` + lineTerminators + `]*)"|'([^'` + lineTerminators + `]*)')`,
)

// scanLinks counts anchor tags in the raw markup and flags the ones whose
// target contains the suspicious keyword. Matching is case-sensitive.
func scanLinks(raw string) LinkAnalysis {
	analysis := LinkAnalysis{SuspiciousLinks: make([]SuspiciousLink, 0)}

	for _, m := range anchorPattern.FindAllStringSubmatchIndex(raw, -1) {
		analysis.TotalLinks++

		var url string
		switch {
		case m[2] >= 0:
			url = raw[m[2]:m[3]]
		case m[4] >= 0:
			url = raw[m[4]:m[5]]
		}

		if strings.Contains(url, suspiciousKeyword) {
			analysis.SuspiciousLinks = append(analysis.SuspiciousLinks, SuspiciousLink{
				DisplayText:  url,
				ActualURL:    url,
				IsSuspicious: true,
				Reason:       suspiciousLinkReason,
			})
		}
	}

	return analysis
}
