// Package main provides the entry point for the phish-detector CLI.
//
// phish-detector scores email text for common phishing indicators and
// renders a threat report.
//
// Usage:
//
//	phish-detector --text "URGENT: verify account"
//	phish-detector message.eml other.eml
//	cat message.txt | phish-detector
//
// See --help for all available options.
package main

func main() {
	Execute()
}
