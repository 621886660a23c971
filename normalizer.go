package placenorm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jamesainslie/go-placenorm/replacements"
)

// Normalizer flattens and tokenizes place names.
// It is safe for concurrent use.
type Normalizer struct {
	table       *replacements.Table
	diagnostics Diagnostics
}

// New creates a Normalizer that uses the given substitution table.
func New(table *replacements.Table, opts ...Option) (*Normalizer, error) {
	if table == nil {
		return nil, ErrNoTable
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	diag := cfg.diagnostics
	if diag == nil {
		diag = logDiagnostics{logger: cfg.logger}
	}

	return &Normalizer{
		table:       table,
		diagnostics: diag,
	}, nil
}

// NewFromFile creates a Normalizer with a table loaded from path.
// See replacements.Load for the supported formats.
func NewFromFile(path string, opts ...Option) (*Normalizer, error) {
	table, err := replacements.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return New(table, opts...)
}

// NewDefault creates a Normalizer with the embedded default table.
func NewDefault(opts ...Option) *Normalizer {
	n, _ := New(replacements.Default(), opts...) // cannot fail with a non-nil table
	return n
}

// Table returns the substitution table.
func (n *Normalizer) Table() *replacements.Table {
	return n.table
}

// Normalize removes diacritics, lowercases, and drops every character that
// is not a letter or digit.
func (n *Normalizer) Normalize(text string) string {
	return n.NormalizeWildcards(text, false)
}

// NormalizeWildcards is Normalize, additionally keeping '?' and '*' when
// allowWildcards is set.
func (n *Normalizer) NormalizeWildcards(text string, allowWildcards bool) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		a := Classify(n.table, r, allowWildcards)
		switch a.Kind {
		case Substitute:
			b.WriteString(a.Replacement)
		case Upper, LowerOrDigit, Wildcard:
			b.WriteByte(byte(a.Rune))
		case IgnoredLetter:
			n.report(a, r, text)
		}
	}

	return b.String()
}

// Tokenize splits text into levels at commas and into tokens at any other
// non-alphanumeric character, applying the same character policy as
// Normalize. Anything after the last letter is ignored. Levels and tokens
// are never empty.
func (n *Normalizer) Tokenize(text string) [][]string {
	var (
		levels [][]string
		words  []string
		buf    strings.Builder
	)

	flushWord := func() {
		if buf.Len() > 0 {
			words = append(words, buf.String())
			buf.Reset()
		}
	}
	flushLevel := func() {
		if len(words) > 0 {
			levels = append(levels, words)
			words = nil
		}
	}

	for _, r := range text[:lastLetterEnd(text)] {
		a := Classify(n.table, r, false)
		switch a.Kind {
		case Substitute:
			buf.WriteString(a.Replacement)
		case Upper, LowerOrDigit:
			buf.WriteByte(byte(a.Rune))
		case IgnoredLetter:
			n.report(a, r, text)
		case Separator:
			flushWord()
			flushLevel()
		default:
			flushWord()
		}
	}
	flushWord()
	flushLevel()

	return levels
}

// Key returns the tokenized form of text as a single string, tokens joined
// by a space and levels by ", ".
func (n *Normalizer) Key(text string) string {
	levels := n.Tokenize(text)
	parts := make([]string, len(levels))
	for i, words := range levels {
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, ", ")
}

// NormalizeLevels returns one normalized string per level: the level's
// tokens concatenated.
func (n *Normalizer) NormalizeLevels(text string) []string {
	levels := n.Tokenize(text)
	if len(levels) == 0 {
		return nil
	}
	out := make([]string, len(levels))
	for i, words := range levels {
		out[i] = strings.Join(words, "")
	}
	return out
}

func (n *Normalizer) report(a Action, r rune, text string) {
	if a.Report {
		n.diagnostics.UntokenizedLetter(r, text)
	}
}

// lastLetterEnd returns the byte offset just past the last ASCII letter or
// non-ASCII character in text; trailing punctuation and digits are junk.
func lastLetterEnd(text string) int {
	end := len(text)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r >= utf8.RuneSelf {
			break
		}
		end -= size
	}
	return end
}
