// Package placenorm normalizes free-text place names into a canonical,
// diacritic-free, lowercase, alphanumeric form for exact-match lookup.
//
// # Quick Start
//
//	n := placenorm.NewDefault()
//
//	n.Normalize("Møn, Denmark")          // "mondenmark"
//	n.Tokenize("Saint-Louis, Missouri")  // [["saint" "louis"] ["missouri"]]
//
// # Character Policy
//
// Every character is classified once (see Classify) in this order: a
// substitution table entry, an ASCII capital (lowercased), an ASCII
// lowercase letter or digit, a wildcard '?' or '*' (Normalize only, when
// enabled), a comma, any other letter (dropped, and reported when it is below
// U+0250), and everything else, which is a boundary.
//
// Normalize concatenates everything that is emitted. Tokenize splits levels
// at commas and tokens at boundaries, after discarding whatever follows the
// last letter of the input.
//
// # Substitution Tables
//
// The table maps single characters to lowercase ASCII replacements. The
// replacements package embeds a default table and loads .properties, .toml,
// .yaml and compiled .pb files:
//
//	n, err := placenorm.NewFromFile("place-normalizer.properties")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Normalizer is safe for concurrent use. Tables are immutable and calls keep
// no shared state; Diagnostics implementations must be safe for concurrent use.
package placenorm
