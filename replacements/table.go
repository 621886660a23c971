// Package replacements holds the character substitution table used by the
// place-name normalizer, together with loaders for the file formats the table
// is distributed in.
package replacements

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Key is the configuration key holding the entry list in every text format.
const Key = "characterReplacements"

const (
	entrySeparator = ','
	keyDelimiter   = ':'
)

// Entry maps one source character to its replacement text.
type Entry struct {
	Source      rune
	Replacement string
}

func (e Entry) String() string {
	return string(e.Source) + string(keyDelimiter) + e.Replacement
}

// Table is an immutable character substitution table.
// It is safe for concurrent use.
type Table struct {
	m map[rune]string
}

// New builds a table from entries. Replacements are lowercased; a replacement
// must consist of ASCII letters and digits only.
func New(entries []Entry) (*Table, error) {
	t := &Table{m: make(map[rune]string, len(entries))}
	for _, e := range entries {
		if err := t.insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) insert(e Entry) error {
	if e.Source == entrySeparator || e.Source == utf8.RuneError {
		return fmt.Errorf("%w: invalid source character %q", ErrMalformed, e.Source)
	}
	if _, dup := t.m[e.Source]; dup {
		return fmt.Errorf("%w: %q (U+%04X)", ErrDuplicateKey, e.Source, e.Source)
	}
	repl := strings.ToLower(e.Replacement)
	for i := 0; i < len(repl); i++ {
		if !isLowerOrDigit(repl[i]) {
			return fmt.Errorf("%w: replacement %q for %q is not alphanumeric", ErrMalformed, e.Replacement, e.Source)
		}
	}
	t.m[e.Source] = repl
	return nil
}

// Parse builds a table from a characterReplacements value: comma-separated
// entries of the form "<char>:<replacement>". Surrounding whitespace is
// trimmed from each entry and empty entries are skipped.
func Parse(value string) (*Table, error) {
	t := &Table{m: make(map[rune]string)}
	for i, raw := range strings.Split(value, string(entrySeparator)) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		e, err := parseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if err := t.insert(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return t, nil
}

func parseEntry(raw string) (Entry, error) {
	src, n := utf8.DecodeRuneInString(raw)
	if src == utf8.RuneError || n >= len(raw) || raw[n] != keyDelimiter {
		return Entry{}, fmt.Errorf("%w: %q is not <char>:<replacement>", ErrMalformed, raw)
	}
	return Entry{Source: src, Replacement: raw[n+1:]}, nil
}

// Lookup returns the lowercase replacement for r.
func (t *Table) Lookup(r rune) (string, bool) {
	s, ok := t.m[r]
	return s, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.m)
}

// Entries returns a copy of the table sorted by source character.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.m))
	for src, repl := range t.m {
		entries = append(entries, Entry{Source: src, Replacement: repl})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return int(a.Source - b.Source) })
	return entries
}

// Format renders entries as a characterReplacements value.
func Format(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(entrySeparator)
		}
		b.WriteString(e.String())
	}
	return b.String()
}

func isLowerOrDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
