package placenorm

import (
	"log/slog"
)

// Option configures a Normalizer.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	diagnostics Diagnostics
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger untokenized-letter warnings are written to
// (default: slog.Default()). It has no effect when WithDiagnostics is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDiagnostics sets the sink that receives untokenized-letter events,
// replacing the logger-backed default.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *config) {
		if d != nil {
			c.diagnostics = d
		}
	}
}
