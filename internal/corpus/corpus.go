// Package corpus loads place-name corpora and measures how a substitution
// table handles them.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading "#" comment lines.
// Returns the header and the remaining text after it.
func ParseHeader(text string) (Header, string) {
	var h Header
	offset := 0

	for line := range strings.Lines(text) {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			if trimmed != "" {
				break
			}
			offset += len(line)
			continue
		}
		offset += len(line)

		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		if value, ok := strings.CutPrefix(trimmed, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(trimmed, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	return h, text[offset:]
}

// ParseNames returns one place name per non-blank line. Lines starting with
// "#" are comments.
func ParseNames(body string) []string {
	var names []string
	for line := range strings.Lines(body) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// File is a loaded corpus file.
type File struct {
	ID     string // filename without extension
	Source string
	Title  string
	Names  []string
}

// LoadFile loads and parses a corpus file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body := ParseHeader(string(data))

	base := filepath.Base(path)
	return &File{
		ID:     strings.TrimSuffix(base, filepath.Ext(base)),
		Source: header.Source,
		Title:  header.Title,
		Names:  ParseNames(body),
	}, nil
}

// LoadDir loads all .txt corpus files from a directory.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		f, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		files = append(files, f)
	}

	return files, nil
}

// Load loads every path, expanding directories with LoadDir.
func Load(paths []string) ([]*File, error) {
	var files []*File
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			dirFiles, err := LoadDir(path)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
			continue
		}

		f, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		files = append(files, f)
	}
	return files, nil
}
