package replacements

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// Load reads a table file, choosing the format from its extension:
// .properties, .toml, .yaml/.yml, or a compiled .pb/.bin table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading table file: %w", err)
	}

	var t *Table
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".properties":
		t, err = LoadProperties(bytes.NewReader(data))
	case ".toml":
		t, err = LoadTOML(bytes.NewReader(data))
	case ".yaml", ".yml":
		t, err = LoadYAML(bytes.NewReader(data))
	case ".pb", ".bin":
		t, err = UnmarshalBinary(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

// LoadProperties reads a Java-style properties document and parses its
// characterReplacements value.
func LoadProperties(r io.Reader) (*Table, error) {
	data, err := readText(r)
	if err != nil {
		return nil, err
	}

	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	value, ok := props.Get(Key)
	if !ok {
		return nil, ErrMissingKey
	}
	return Parse(value)
}

// document is the shape shared by TOML and YAML table files. The value is
// either an entry-list string or a map from single characters to replacements.
type document struct {
	CharacterReplacements any `toml:"characterReplacements" yaml:"characterReplacements"`
}

// LoadTOML reads a TOML table file.
func LoadTOML(r io.Reader) (*Table, error) {
	data, err := readText(r)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromDocument(doc)
}

// LoadYAML reads a YAML table file.
func LoadYAML(r io.Reader) (*Table, error) {
	data, err := readText(r)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Table, error) {
	switch v := doc.CharacterReplacements.(type) {
	case nil:
		return nil, ErrMissingKey
	case string:
		return Parse(v)
	case map[string]any:
		entries := make([]Entry, 0, len(v))
		for key, raw := range v {
			src, n := utf8.DecodeRuneInString(key)
			if n == 0 || n != len(key) {
				return nil, fmt.Errorf("%w: key %q is not a single character", ErrMalformed, key)
			}
			repl, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: replacement for %q is %T, not a string", ErrMalformed, key, raw)
			}
			entries = append(entries, Entry{Source: src, Replacement: repl})
		}
		return New(entries)
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %T", ErrMalformed, Key, v)
	}
}

// readText reads r as UTF-8, honouring a UTF-8 or UTF-16 byte order mark.
// Invalid sequences decode to U+FFFD, which is never a valid source key.
func readText(r io.Reader) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return data, nil
}
