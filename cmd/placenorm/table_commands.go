package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-placenorm/internal/tablegen"
	"github.com/jamesainslie/go-placenorm/replacements"
)

func newTableCommand(ctx *commandContext) *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect, compile and generate substitution tables",
	}

	tableCmd.AddCommand(newTableShowCommand(ctx))
	tableCmd.AddCommand(newTableCompileCommand(ctx))
	tableCmd.AddCommand(newTableGenerateCommand(ctx))

	return tableCmd
}

func newTableShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the entries of the active table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := ctx.table.Entries()
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{string(e.Source), fmt.Sprintf("U+%04X", e.Source), e.Replacement}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Char", "Code Point", "Replacement"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%s entries\n", humanize.Comma(int64(len(entries))))
			return nil
		},
	}
}

func newTableCompileCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Write the active table in compiled binary form",
		Example: `  placenorm table compile --out default.pb
  placenorm --table custom.toml table compile --out custom.pb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replacements.MarshalBinary(ctx.table)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, outPath, data); err != nil {
				return err
			}
			ctx.logger.Info("table compiled",
				slog.String("path", outPath),
				slog.Int("entries", ctx.table.Len()),
				slog.String("size", humanize.Bytes(uint64(len(data)))),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newTableGenerateCommand(ctx *commandContext) *cobra.Command {
	var from, to string
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive a table from Unicode decompositions",
		Long: `Derive substitution entries for every letter in a code point range
whose decomposition, with combining marks removed, is plain ASCII. Known
ligatures and stroked letters are mapped explicitly. Without --from and
--to the built-in table's ranges are used.`,
		Example: `  placenorm table generate > replacements/default.properties
  placenorm table generate --from U+0100 --to U+017F`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := tablegen.DefaultRanges
			if from != "" || to != "" {
				rng, err := parseRange(from, to)
				if err != nil {
					return err
				}
				ranges = []tablegen.Range{rng}
			}

			entries := tablegen.Derive(ranges, tablegen.Overrides)
			var buf bytes.Buffer
			if err := tablegen.WriteProperties(&buf, entries); err != nil {
				return err
			}
			if err := writeOutput(cmd, outPath, buf.Bytes()); err != nil {
				return err
			}
			ctx.logger.Debug("table generated", slog.Int("entries", len(entries)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First code point (U+XXXX or 0xXXXX)")
	cmd.Flags().StringVar(&to, "to", "", "Last code point, inclusive")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

// writeOutput atomically replaces path with data, or writes data to stdout
// when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(data))
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func parseRange(from, to string) (tablegen.Range, error) {
	lo, err := parseCodePoint(from)
	if err != nil {
		return tablegen.Range{}, err
	}
	hi, err := parseCodePoint(to)
	if err != nil {
		return tablegen.Range{}, err
	}
	if lo > hi {
		return tablegen.Range{}, fmt.Errorf("invalid range: %U is after %U", lo, hi)
	}
	return tablegen.Range{Lo: lo, Hi: hi}, nil
}

// parseCodePoint accepts U+00E9, 0x00E9 or bare hex digits.
func parseCodePoint(s string) (rune, error) {
	digits := strings.TrimSpace(s)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(digits, prefix); ok {
			digits = rest
			break
		}
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || n > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(n), nil
}
