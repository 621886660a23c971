package replacements

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed default.properties
var defaultProperties string

var defaultTable = sync.OnceValue(func() *Table {
	t, err := LoadProperties(strings.NewReader(defaultProperties))
	if err != nil {
		panic("replacements: embedded default table: " + err.Error())
	}
	return t
})

// Default returns the embedded table covering the Latin-1 Supplement, Latin
// Extended-A/B and Latin Extended Additional blocks. It is parsed once.
func Default() *Table {
	return defaultTable()
}
