package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	placenorm "github.com/jamesainslie/go-placenorm"
	"github.com/jamesainslie/go-placenorm/replacements"
)

// commandContext carries global flag values and lazily built shared state.
type commandContext struct {
	tablePath string
	logLevel  string
	logFormat string

	once       sync.Once
	logger     *slog.Logger
	table      *replacements.Table
	normalizer *placenorm.Normalizer
	err        error
}

// setup builds the logger, table and normalizer once per invocation.
func (c *commandContext) setup(stderr io.Writer) error {
	c.once.Do(func() {
		c.logger, c.err = newLogger(stderr, c.logLevel, c.logFormat)
		if c.err != nil {
			return
		}

		if c.tablePath == "" {
			c.table = replacements.Default()
		} else {
			c.table, c.err = replacements.Load(c.tablePath)
			if c.err != nil {
				c.err = fmt.Errorf("%w: %w", placenorm.ErrConfig, c.err)
				return
			}
		}
		c.logger.Debug("substitution table loaded",
			slog.String("path", c.tablePath),
			slog.Int("entries", c.table.Len()),
		)

		c.normalizer, c.err = placenorm.New(c.table, placenorm.WithLogger(c.logger))
	})
	return c.err
}

// newLogger returns a slog logger on w. An empty format picks text for a
// terminal and JSON otherwise.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
