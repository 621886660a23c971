package main

import (
	"bufio"
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/cobra"
)

// inputs yields each argument, or each line of stdin when there are none.
// Trailing carriage returns are dropped from stdin lines.
func inputs(cmd *cobra.Command, args []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(args) > 0 {
			for _, arg := range args {
				if !yield(arg, nil) {
					return
				}
			}
			return
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if !yield(strings.TrimSuffix(scanner.Text(), "\r"), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("reading stdin: %w", err))
		}
	}
}
