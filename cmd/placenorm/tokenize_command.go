package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type tokenizeResult struct {
	Text   string     `json:"text"`
	Levels [][]string `json:"levels"`
}

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tokenize [TEXT...]",
		Short: "Split place names into levels of word tokens",
		Long: `Split each argument into comma-separated levels of word tokens.
Levels are printed separated by " | ". With no arguments, each line of
standard input is tokenized.`,
		Example: `  placenorm tokenize "Saint-Louis, Missouri"
  placenorm tokenize --json < names.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []tokenizeResult
			out := cmd.OutOrStdout()
			for text, err := range inputs(cmd, args) {
				if err != nil {
					return err
				}
				levels := ctx.normalizer.Tokenize(text)
				if jsonOutput {
					if levels == nil {
						levels = [][]string{}
					}
					results = append(results, tokenizeResult{Text: text, Levels: levels})
					continue
				}
				fmt.Fprintln(out, formatLevels(levels))
			}
			if jsonOutput {
				if results == nil {
					results = []tokenizeResult{}
				}
				return writeJSON(cmd, results)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")

	return cmd
}

func formatLevels(levels [][]string) string {
	parts := make([]string, len(levels))
	for i, words := range levels {
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, " | ")
}
