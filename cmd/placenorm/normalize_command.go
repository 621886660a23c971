package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var wildcards bool
	var levels bool

	cmd := &cobra.Command{
		Use:   "normalize [TEXT...]",
		Short: "Print the normalized key of each place name",
		Long: `Print the normalized key of each argument, one per line. With no
arguments, each line of standard input is normalized.`,
		Example: `  placenorm normalize "Møn, Denmark"
  placenorm normalize --wildcards "São Paulo*"
  placenorm normalize --levels "Tromsø, Troms og Finnmark"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for text, err := range inputs(cmd, args) {
				if err != nil {
					return err
				}
				if levels {
					fmt.Fprintln(out, strings.Join(ctx.normalizer.NormalizeLevels(text), ", "))
					continue
				}
				fmt.Fprintln(out, ctx.normalizer.NormalizeWildcards(text, wildcards))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&wildcards, "wildcards", "w", false, "Keep '*' as a wildcard character")
	cmd.Flags().BoolVar(&levels, "levels", false, "Normalize each comma-separated level separately")
	cmd.MarkFlagsMutuallyExclusive("wildcards", "levels")

	return cmd
}
