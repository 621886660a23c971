package tablegen

import (
	"bufio"
	"io"
	"strings"

	"github.com/jamesainslie/go-placenorm/replacements"
)

const entriesPerLine = 16

const header = `# Default character substitution table for place-name normalization.
#
# Each entry is <char>:<replacement>, entries are comma separated. Source
# characters are Latin-1 Supplement, Latin Extended-A/B and Latin Extended
# Additional letters; replacements are lowercase ASCII letters or digits.
# Regenerate with: placenorm table generate > replacements/default.properties
`

// WriteProperties writes entries as a properties document, wrapping the
// characterReplacements value with line continuations.
func WriteProperties(w io.Writer, entries []replacements.Entry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteString(replacements.Key + "=")

	for start := 0; start < len(entries); start += entriesPerLine {
		end := min(start+entriesPerLine, len(entries))
		if start > 0 {
			bw.WriteString(",\\\n    ")
		}
		bw.WriteString(replacements.Format(entries[start:end]))
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// FormatProperties is WriteProperties into a string.
func FormatProperties(entries []replacements.Entry) string {
	var b strings.Builder
	_ = WriteProperties(&b, entries) // strings.Builder never fails
	return b.String()
}
