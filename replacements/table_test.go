package replacements

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "single entry",
			input: "ø:o",
			want:  []Entry{{Source: 'ø', Replacement: "o"}},
		},
		{
			name:  "multiple entries sorted by source",
			input: "ø:o,æ:ae,ß:ss",
			want: []Entry{
				{Source: 'ß', Replacement: "ss"},
				{Source: 'æ', Replacement: "ae"},
				{Source: 'ø', Replacement: "o"},
			},
		},
		{
			name:  "replacement lowercased",
			input: "Æ:AE",
			want:  []Entry{{Source: 'Æ', Replacement: "ae"}},
		},
		{
			name:  "empty replacement",
			input: "ʼ:",
			want:  []Entry{{Source: 'ʼ', Replacement: ""}},
		},
		{
			name:  "trailing comma and whitespace",
			input: " é:e ,\n  è:e,",
			want: []Entry{
				{Source: 'è', Replacement: "e"},
				{Source: 'é', Replacement: "e"},
			},
		},
		{
			name:  "ascii source allowed",
			input: "K:k",
			want:  []Entry{{Source: 'K', Replacement: "k"}},
		},
		{
			name:  "empty value",
			input: "",
			want:  []Entry{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, tbl.Entries()); diff != "" {
				t.Errorf("Parse(%q) entries mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing delimiter", "øo", ErrMalformed},
		{"source only", "ø", ErrMalformed},
		{"non alphanumeric replacement", "ø:o-", ErrMalformed},
		{"non ascii replacement", "ø:ö", ErrMalformed},
		{"duplicate source", "ø:o,ø:oe", ErrDuplicateKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tc.input)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestNew_RejectsComma(t *testing.T) {
	_, err := New([]Entry{{Source: ',', Replacement: ""}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for comma source, got: %v", err)
	}
}

func TestTable_Lookup(t *testing.T) {
	tbl, err := Parse("ø:o,Ø:O")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, ok := tbl.Lookup('Ø'); !ok || got != "o" {
		t.Errorf("Lookup('Ø') = %q, %v; want \"o\", true", got, ok)
	}
	if _, ok := tbl.Lookup('x'); ok {
		t.Error("Lookup('x') should miss")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	input := "ß:ss,æ:ae,ø:o"
	tbl, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Format(tbl.Entries()); got != input {
		t.Errorf("Format() = %q, want %q", got, input)
	}
}

func TestDefault(t *testing.T) {
	tbl := Default()
	if tbl != Default() {
		t.Error("Default() should return the same table on every call")
	}

	tests := []struct {
		source rune
		want   string
	}{
		{'ø', "o"},
		{'Ø', "o"},
		{'ã', "a"},
		{'é', "e"},
		{'Æ', "ae"},
		{'ß', "ss"},
		{'þ', "th"},
		{'ł', "l"},
		{'ş', "s"},
		{'ệ', "e"},
	}
	for _, tc := range tests {
		got, ok := tbl.Lookup(tc.source)
		if !ok || got != tc.want {
			t.Errorf("Default().Lookup(%q) = %q, %v; want %q", tc.source, got, ok, tc.want)
		}
	}

	// Letters that are deliberately left unmapped.
	for _, r := range []rune{'ª', 'º', 'Ʒ', 'Ƹ', 'A', 'z'} {
		if _, ok := tbl.Lookup(r); ok {
			t.Errorf("Default() should not map %q", r)
		}
	}
}
