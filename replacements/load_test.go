package replacements

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Formats(t *testing.T) {
	want := []Entry{
		{Source: 'ã', Replacement: "a"},
		{Source: 'æ', Replacement: "ae"},
		{Source: 'ø', Replacement: "o"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "properties with continuation",
			file: "table.properties",
			content: `# place normalizer
characterReplacements=ø:o,\
    æ:ae,\
    ã:a
`,
		},
		{
			name: "properties with unicode escapes",
			file: "table.properties",
			content: `characterReplacements=\u00f8:o,\u00e6:ae,\u00e3:a
`,
		},
		{
			name: "toml string",
			file: "table.toml",
			content: `characterReplacements = "ø:o,æ:ae,ã:a"
`,
		},
		{
			name: "toml table",
			file: "table.toml",
			content: `[characterReplacements]
"ø" = "o"
"æ" = "AE"
"ã" = "a"
`,
		},
		{
			name: "yaml string",
			file: "table.yaml",
			content: `characterReplacements: "ø:o,æ:ae,ã:a"
`,
		},
		{
			name: "yaml map",
			file: "table.yml",
			content: `characterReplacements:
  ø: o
  æ: ae
  ã: a
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, []byte(tc.content))
			tbl, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s) failed: %v", tc.file, err)
			}
			if diff := cmp.Diff(want, tbl.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_ByteOrderMark(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("characterReplacements=ø:o\n")...)
	path := writeFile(t, "bom.properties", content)

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, ok := tbl.Lookup('ø'); !ok || got != "o" {
		t.Errorf("Lookup('ø') = %q, %v; want \"o\", true", got, ok)
	}
}

func TestLoad_UTF16(t *testing.T) {
	// "characterReplacements=ø:o" as UTF-16LE with a byte order mark.
	text := "characterReplacements=ø:o\n"
	data := []byte{0xFF, 0xFE}
	for _, r := range text {
		data = append(data, byte(r), byte(r>>8))
	}
	path := writeFile(t, "utf16.properties", data)

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"missing key properties", "t.properties", "other=x\n", ErrMissingKey},
		{"missing key toml", "t.toml", "other = \"x\"\n", ErrMissingKey},
		{"missing key yaml", "t.yaml", "other: x\n", ErrMissingKey},
		{"bad toml", "t.toml", "characterReplacements = \n", ErrMalformed},
		{"bad yaml", "t.yaml", "characterReplacements: [\n", ErrMalformed},
		{"multi character key", "t.toml", "[characterReplacements]\n\"ab\" = \"x\"\n", ErrMalformed},
		{"non string value", "t.yaml", "characterReplacements:\n  ø: 1\n", ErrMalformed},
		{"wrong type", "t.yaml", "characterReplacements: 12\n", ErrMalformed},
		{"bad entry", "t.properties", "characterReplacements=øo\n", ErrMalformed},
		{"unsupported extension", "t.json", "{}", ErrUnsupportedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, []byte(tc.content))
			_, err := Load(path)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.properties"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestLoadProperties_DollarIsLiteral(t *testing.T) {
	// Expansion is disabled, so "${" in comments or other keys is harmless.
	tbl, err := LoadProperties(strings.NewReader("note=${undefined}\ncharacterReplacements=ø:o\n"))
	if err != nil {
		t.Fatalf("LoadProperties failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}
