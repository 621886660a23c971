// Package tablegen derives substitution table entries from Unicode canonical
// decompositions. It is used offline to build the default table; the
// normalizer itself never decomposes text.
package tablegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jamesainslie/go-placenorm/replacements"
)

// Range is an inclusive span of code points.
type Range struct {
	Lo, Hi rune
}

// DefaultRanges are the blocks covered by the embedded default table: Latin-1
// Supplement letters, Latin Extended-A and B, and Latin Extended Additional.
var DefaultRanges = []Range{
	{Lo: 0x00C0, Hi: 0x024F},
	{Lo: 0x1E00, Hi: 0x1EFF},
}

// Overrides covers letters whose canonical decomposition does not reach a
// plain ASCII letter: ligatures, stroked letters and the like.
var Overrides = map[rune]string{
	'Æ': "ae", 'æ': "ae", 'ß': "ss", 'ẞ': "ss", 'Ø': "o", 'ø': "o",
	'Þ': "th", 'þ': "th", 'Ð': "d", 'ð': "d", 'Đ': "d", 'đ': "d",
	'Ł': "l", 'ł': "l", 'Œ': "oe", 'œ': "oe", 'ı': "i", 'Ŋ': "n", 'ŋ': "n",
	'Ħ': "h", 'ħ': "h", 'Ŧ': "t", 'ŧ': "t", 'ĸ': "k", 'ſ': "s",
	'Ĳ': "ij", 'ĳ': "ij", 'Ŀ': "l", 'ŀ': "l", 'ŉ': "n",
	'Ƀ': "b", 'ƀ': "b", 'Ɨ': "i", 'ɨ': "i", 'Ƶ': "z", 'ƶ': "z", 'Ǥ': "g", 'ǥ': "g",
	'Ɖ': "d", 'Ɗ': "d", 'Ƒ': "f", 'ƒ': "f", 'Ɠ': "g", 'Ƙ': "k", 'ƙ': "k",
	'ƚ': "l", 'Ɲ': "n", 'ƞ': "n", 'Ɵ': "o", 'Ƥ': "p", 'ƥ': "p",
	'Ƭ': "t", 'ƭ': "t", 'Ʈ': "t", 'Ʋ': "v", 'Ƴ': "y", 'ƴ': "y",
	'Ǆ': "dz", 'ǅ': "dz", 'ǆ': "dz", 'Ǉ': "lj", 'ǈ': "lj", 'ǉ': "lj",
	'Ǌ': "nj", 'ǋ': "nj", 'ǌ': "nj", 'Ǳ': "dz", 'ǲ': "dz", 'ǳ': "dz",
	'Ǣ': "ae", 'ǣ': "ae", 'Ǽ': "ae", 'ǽ': "ae", 'Ǿ': "o", 'ǿ': "o",
	'Ȣ': "ou", 'ȣ': "ou", 'Ȥ': "z", 'ȥ': "z", 'ȡ': "d", 'ȴ': "l", 'ȵ': "n",
	'ȶ': "t", 'ȷ': "j", 'Ⱥ': "a", 'Ȼ': "c", 'ȼ': "c", 'Ƚ': "l", 'Ⱦ': "t",
	'ȿ': "s", 'ɀ': "z", 'Ɇ': "e", 'ɇ': "e", 'Ɉ': "j", 'ɉ': "j",
	'Ɍ': "r", 'ɍ': "r", 'Ɏ': "y", 'ɏ': "y",
}

// Derive returns an entry for every letter in ranges whose override, or
// whose decomposition with nonspacing marks removed, is non-empty lowercase
// ASCII alphanumeric. Entries are in code point order.
func Derive(ranges []Range, overrides map[rune]string) []replacements.Entry {
	var entries []replacements.Entry
	for _, rng := range ranges {
		for r := rng.Lo; r <= rng.Hi; r++ {
			if !unicode.IsLetter(r) {
				continue
			}
			repl, ok := overrides[r]
			if !ok {
				repl = fold(r)
			}
			if !isASCIIAlnum(repl) {
				continue
			}
			entries = append(entries, replacements.Entry{Source: r, Replacement: repl})
		}
	}
	return entries
}

// fold decomposes r, drops nonspacing marks and lowercases the rest.
func fold(r rune) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, string(r))
	if err != nil {
		return ""
	}
	return strings.ToLower(s)
}

func isASCIIAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
