package main

import (
	"fmt"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/mikey/phish-detector/internal/core"
)

// NewRulesCmd creates the rules command.
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the phrase rules used for scoring",
		Long: `Print every phrase rule in evaluation order, with the threat level it
raises to and how it changes the confidence score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(core.Rules()))
			for _, rule := range core.Rules() {
				rows = append(rows, []string{
					"`" + rule.Phrase + "`",
					rule.Level.String(),
					confidenceEffect(rule),
					rule.Indicator,
				})
			}

			return markdown.NewMarkdown(cmd.OutOrStdout()).
				Table(markdown.TableSet{
					Header: []string{"Phrase", "Level", "Confidence", "Indicator"},
					Rows:   rows,
				}).
				PlainTextf("Confidence starts at %d and never exceeds %d.", core.BaseConfidence, core.MaxConfidence).
				Build()
		},
	}
}

func confidenceEffect(rule core.Rule) string {
	if rule.Fixed != 0 {
		return "= " + strconv.Itoa(rule.Fixed)
	}
	return fmt.Sprintf("%+d", rule.Delta)
}
