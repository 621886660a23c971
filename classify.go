package placenorm

import (
	"unicode"

	"github.com/jamesainslie/go-placenorm/replacements"
)

// Kind is the behavioral category of one input character.
type Kind uint8

const (
	// Boundary characters are dropped and end the current token.
	Boundary Kind = iota
	// Substitute characters are replaced by their table entry.
	Substitute
	// Upper is an ASCII capital, emitted lowercased.
	Upper
	// LowerOrDigit is an ASCII lowercase letter or digit, emitted unchanged.
	LowerOrDigit
	// Wildcard is '?' or '*' when wildcards are allowed.
	Wildcard
	// Separator is the comma that ends a level when tokenizing.
	Separator
	// IgnoredLetter is a letter with no mapping. It is dropped without
	// ending the current token.
	IgnoredLetter
)

var kindNames = [...]string{
	Boundary:      "boundary",
	Substitute:    "substitute",
	Upper:         "upper",
	LowerOrDigit:  "lower-or-digit",
	Wildcard:      "wildcard",
	Separator:     "separator",
	IgnoredLetter: "ignored-letter",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// reportLimit is U+0250 (IPA Extensions). Unmapped letters at or above it
// come from scripts that don't map onto roman letters and are dropped quietly.
const reportLimit = 0x250

// Action is the outcome of classifying one character.
type Action struct {
	Kind Kind
	// Replacement is the lowercase table entry for Substitute.
	Replacement string
	// Rune is the character to emit for Upper, LowerOrDigit and Wildcard.
	Rune rune
	// Report is set for IgnoredLetter when the letter should be reported
	// as untokenized.
	Report bool
}

// Text returns what the action contributes to the output.
func (a Action) Text() string {
	switch a.Kind {
	case Substitute:
		return a.Replacement
	case Upper, LowerOrDigit, Wildcard:
		return string(a.Rune)
	default:
		return ""
	}
}

// Emits reports whether the action appends to the current token.
func (a Action) Emits() bool {
	switch a.Kind {
	case Substitute, Upper, LowerOrDigit, Wildcard:
		return true
	default:
		return false
	}
}

// Classify decides what to do with r. Rules apply in order: table entry,
// ASCII capital, ASCII lowercase or digit, wildcard (only when allowed),
// comma, any other letter, and finally boundary.
func Classify(t *replacements.Table, r rune, wildcards bool) Action {
	if repl, ok := t.Lookup(r); ok {
		return Action{Kind: Substitute, Replacement: repl}
	}

	switch {
	case r >= 'A' && r <= 'Z':
		return Action{Kind: Upper, Rune: r + ('a' - 'A')}
	case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
		return Action{Kind: LowerOrDigit, Rune: r}
	case wildcards && (r == '?' || r == '*'):
		return Action{Kind: Wildcard, Rune: r}
	case r == ',':
		return Action{Kind: Separator}
	case unicode.IsLetter(r):
		return Action{Kind: IgnoredLetter, Report: reportable(r)}
	default:
		return Action{Kind: Boundary}
	}
}

// reportable excludes letters at or above reportLimit, the ordinal
// indicators ª and º (Spanish 1ª, 2º), and Ezh/reversed Ezh, which only
// occur as noise.
func reportable(r rune) bool {
	switch r {
	case 'ª', 'º', 'Ʒ', 'Ƹ':
		return false
	}
	return r < reportLimit
}
