package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "placenorm",
		Short: "Normalize and tokenize place names",
		Long: `placenorm folds place names such as "Møn, Denmark" into ASCII
lowercase keys suitable for indexing and matching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.tablePath, "table", "t", "", "Substitution table file (.properties, .toml, .yaml, .pb); built-in table if empty")
	flags.StringVar(&ctx.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.logFormat, "log-format", "", "Log format (text or json); text on a terminal, json otherwise")

	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newTableCommand(ctx))

	return rootCmd
}
