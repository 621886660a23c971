package placenorm_test

import (
	"fmt"

	placenorm "github.com/jamesainslie/go-placenorm"
	"github.com/jamesainslie/go-placenorm/replacements"
)

func ExampleNormalizer_Normalize() {
	n := placenorm.NewDefault()
	fmt.Println(n.Normalize("Møn, Denmark"))
	fmt.Println(n.NormalizeWildcards("São Paulo, Brazil*", true))
	// Output:
	// mondenmark
	// saopaulobrazil*
}

func ExampleNormalizer_Tokenize() {
	n := placenorm.NewDefault()
	fmt.Println(n.Tokenize("Paris, France"))
	fmt.Println(n.Tokenize("Saint-Louis, Missouri"))
	fmt.Println(len(n.Tokenize("???")))
	// Output:
	// [[paris] [france]]
	// [[saint louis] [missouri]]
	// 0
}

func ExampleNew() {
	table, err := replacements.Parse("ø:o,å:aa")
	if err != nil {
		panic(err)
	}

	var collected placenorm.Collector
	n, err := placenorm.New(table, placenorm.WithDiagnostics(&collected))
	if err != nil {
		panic(err)
	}

	fmt.Println(n.Key("Tromsø, Tromsø og Finnmark"))
	fmt.Println(n.Normalize("Ålesund")) // Å is not in the table
	fmt.Println(len(collected.Events()))
	// Output:
	// tromso, tromso og finnmark
	// lesund
	// 1
}
