package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	placenorm "github.com/jamesainslie/go-placenorm"
	"github.com/jamesainslie/go-placenorm/replacements"
)

// runCLI executes the root command with args and stdin, returning stdout
// and stderr.
func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "arguments",
			args: []string{"normalize", "Møn, Denmark", "Saint-Louis, MO 63101"},
			want: "mondenmark\nsaintlouismo63101\n",
		},
		{
			name: "wildcards",
			args: []string{"normalize", "--wildcards", "São Paulo*"},
			want: "saopaulo*\n",
		},
		{
			name: "wildcards off",
			args: []string{"normalize", "São Paulo*"},
			want: "saopaulo\n",
		},
		{
			name: "levels",
			args: []string{"normalize", "--levels", "Tromsø, Troms og Finnmark"},
			want: "tromso, tromsogfinnmark\n",
		},
		{
			name:  "stdin lines",
			args:  []string{"normalize"},
			stdin: "Paris, France\r\n???\nZürich\n",
			want:  "parisfrance\n\nzurich\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, tt.stdin)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNormalizeCommand_CustomTable(t *testing.T) {
	tablePath := writeFile(t, "table.toml", `characterReplacements = "ø:oe"`)

	out, _, err := runCLI(t, []string{"--table", tablePath, "normalize", "Møn"}, "")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "moen\n" {
		t.Errorf("output = %q, want %q", out, "moen\n")
	}
}

func TestNormalizeCommand_ReportsUnmappedLetters(t *testing.T) {
	tablePath := writeFile(t, "table.properties", "characterReplacements=ø:o\n")

	out, stderr, err := runCLI(t, []string{"--table", tablePath, "--log-format", "json", "normalize", "Łeba"}, "")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "eba\n" {
		t.Errorf("output = %q, want %q", out, "eba\n")
	}
	requireContains(t, stderr, `"msg":"Untokenized letter: Ł (321) in Łeba"`)
}

func TestTokenizeCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"tokenize", "Saint-Louis, Missouri", "?!"}, "")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := "saint louis | missouri\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestTokenizeCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, []string{"tokenize", "--json"}, "Paris, France\n")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	requireContains(t, out, `"text": "Paris, France"`)
	requireContains(t, out, `"paris"`)
	requireContains(t, out, `"france"`)
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "islands.txt")
	content := "# Title: Islands\n\nMøn, Denmark\nMon, Denmark\n東京\n"
	if err := os.WriteFile(corpusPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"analyze", "--workers", "1", dir}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "islands")
	requireContains(t, out, "Distinct keys: 1")
	requireContains(t, out, "mondenmark")
	requireContains(t, out, "Mon, Denmark | Møn, Denmark")
}

func TestAnalyzeCommand_RequiresPath(t *testing.T) {
	if _, _, err := runCLI(t, []string{"analyze"}, ""); err == nil {
		t.Fatal("expected error without paths")
	}
}

func TestTableShowCommand(t *testing.T) {
	tablePath := writeFile(t, "table.yaml", "characterReplacements:\n  ø: o\n  ß: ss\n")

	out, _, err := runCLI(t, []string{"--table", tablePath, "table", "show"}, "")
	if err != nil {
		t.Fatalf("table show: %v", err)
	}
	requireContains(t, out, "U+00DF")
	requireContains(t, out, "U+00F8")
	requireContains(t, out, "2 entries")
}

func TestTableCompileCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.pb")

	if _, _, err := runCLI(t, []string{"table", "compile", "--out", outPath}, ""); err != nil {
		t.Fatalf("table compile: %v", err)
	}

	compiled, err := replacements.Load(outPath)
	if err != nil {
		t.Fatalf("Load(%s): %v", outPath, err)
	}
	if compiled.Len() != replacements.Default().Len() {
		t.Errorf("compiled table has %d entries, want %d", compiled.Len(), replacements.Default().Len())
	}

	// The compiled table is usable as --table.
	out, _, err := runCLI(t, []string{"--table", outPath, "normalize", "Ærø"}, "")
	if err != nil {
		t.Fatalf("normalize with compiled table: %v", err)
	}
	if out != "aero\n" {
		t.Errorf("output = %q, want %q", out, "aero\n")
	}
}

func TestTableCompileCommand_RequiresOut(t *testing.T) {
	if _, _, err := runCLI(t, []string{"table", "compile"}, ""); err == nil {
		t.Fatal("expected error without --out")
	}
}

func TestTableGenerateCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"table", "generate", "--from", "U+00E0", "--to", "0x00E5"}, "")
	if err != nil {
		t.Fatalf("table generate: %v", err)
	}
	requireContains(t, out, "characterReplacements=à:a,á:a,â:a,ã:a,ä:a,å:a\n")
}

func TestTableGenerateCommand_DefaultMatchesEmbedded(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.properties")
	if _, _, err := runCLI(t, []string{"table", "generate", "--out", outPath}, ""); err != nil {
		t.Fatalf("table generate: %v", err)
	}

	generated, err := replacements.Load(outPath)
	if err != nil {
		t.Fatalf("Load(%s): %v", outPath, err)
	}
	if generated.Len() != replacements.Default().Len() {
		t.Errorf("generated table has %d entries, want %d", generated.Len(), replacements.Default().Len())
	}
}

func TestTableGenerateCommand_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"reversed", []string{"--from", "U+0100", "--to", "U+00FF"}},
		{"not hex", []string{"--from", "U+00ZZ", "--to", "U+00FF"}},
		{"beyond unicode", []string{"--from", "U+0000", "--to", "U+110000"}},
		{"from without to", []string{"--from", "U+0000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"table", "generate"}, tt.args...)
			if _, _, err := runCLI(t, args, ""); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestGlobalFlags_Errors(t *testing.T) {
	_, _, err := runCLI(t, []string{"--table", filepath.Join(t.TempDir(), "missing.properties"), "normalize", "x"}, "")
	if !errors.Is(err, placenorm.ErrConfig) {
		t.Errorf("missing table: expected ErrConfig, got: %v", err)
	}
	if !errors.Is(err, replacements.ErrNotFound) {
		t.Errorf("missing table: expected ErrNotFound, got: %v", err)
	}

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "normalize", "x"}, ""); err == nil {
		t.Error("expected error for invalid log level")
	}
	if _, _, err := runCLI(t, []string{"--log-format", "xml", "normalize", "x"}, ""); err == nil {
		t.Error("expected error for invalid log format")
	}
}

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"U+00E9", 'é', false},
		{"u+1e9e", 'ẞ', false},
		{"0x41", 'A', false},
		{"ff", 'ÿ', false},
		{"", 0, true},
		{"U+", 0, true},
		{"U+110000", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCodePoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCodePoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCodePoint(%q) = %U, want %U", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildVersion(t *testing.T) {
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q", got, "dev")
	}
}
