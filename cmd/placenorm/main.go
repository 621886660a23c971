// Command placenorm normalizes and tokenizes place names from the command
// line and inspects substitution tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []fang.Option{fang.WithVersion(buildVersion()), fang.WithCommit(commit)}
	if err := fang.Execute(ctx, newRootCommand(), opts...); err != nil {
		stop()
		os.Exit(1)
	}
}

func buildVersion() string {
	if date == "unknown" {
		return version
	}
	return fmt.Sprintf("%s (built %s)", version, date)
}
