package corpus

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	placenorm "github.com/jamesainslie/go-placenorm"
	"github.com/jamesainslie/go-placenorm/replacements"
)

// Options controls an analysis run.
type Options struct {
	// Workers bounds how many files are processed at once
	// (default: runtime.NumCPU()).
	Workers int
}

// Stats counts what tokenization produced for a set of names.
type Stats struct {
	Names  int
	Levels int
	Tokens int
	// Empty counts names that produced no tokens at all.
	Empty int
}

func (s *Stats) add(o Stats) {
	s.Names += o.Names
	s.Levels += o.Levels
	s.Tokens += o.Tokens
	s.Empty += o.Empty
}

// TokensPerName returns the mean token count over all names.
func (s Stats) TokensPerName() float64 {
	if s.Names == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.Names)
}

// FileReport holds the stats for one corpus file.
type FileReport struct {
	ID    string
	Stats Stats
}

// Collision is a normalized key shared by differently written names.
type Collision struct {
	Key   string
	Names []string
}

// LetterCount is how often an unmapped letter was reported.
type LetterCount struct {
	Letter rune
	Count  int
}

// Report is the outcome of Analyze.
type Report struct {
	Files      []FileReport
	Total      Stats
	Distinct   int // distinct normalized keys
	Collisions []Collision
	Unmapped   []LetterCount
}

type fileResult struct {
	stats Stats
	keys  map[string][]string
}

// Analyze tokenizes and normalizes every name in files with table, in
// parallel, and reports coverage statistics.
func Analyze(ctx context.Context, table *replacements.Table, files []*File, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Only tokenizing reports letters, so each occurrence is counted once.
	var collector placenorm.Collector
	tok, err := placenorm.New(table, placenorm.WithDiagnostics(&collector))
	if err != nil {
		return nil, err
	}
	keyer, err := placenorm.New(table, placenorm.WithDiagnostics(placenorm.DiagnosticsFunc(func(rune, string) {})))
	if err != nil {
		return nil, err
	}

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			res := fileResult{keys: make(map[string][]string)}
			for _, name := range f.Names {
				if err := ctx.Err(); err != nil {
					return err
				}
				analyzeName(tok, keyer, name, &res)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Files: make([]FileReport, len(files))}
	keys := make(map[string][]string)
	for i, res := range results {
		report.Files[i] = FileReport{ID: files[i].ID, Stats: res.stats}
		report.Total.add(res.stats)
		for key, names := range res.keys {
			keys[key] = appendUnique(keys[key], names...)
		}
	}

	report.Distinct = len(keys)
	report.Collisions = collisions(keys)
	report.Unmapped = letterCounts(collector.Counts())

	return report, nil
}

func analyzeName(tok, keyer *placenorm.Normalizer, name string, res *fileResult) {
	res.stats.Names++

	levels := tok.Tokenize(name)
	if len(levels) == 0 {
		res.stats.Empty++
	}
	res.stats.Levels += len(levels)
	for _, words := range levels {
		res.stats.Tokens += len(words)
	}

	if key := keyer.Normalize(name); key != "" {
		res.keys[key] = appendUnique(res.keys[key], name)
	}
}

func appendUnique(dst []string, names ...string) []string {
	for _, name := range names {
		if !slices.Contains(dst, name) {
			dst = append(dst, name)
		}
	}
	return dst
}

// collisions returns keys with more than one distinct spelling, largest
// groups first.
func collisions(keys map[string][]string) []Collision {
	var out []Collision
	for key, names := range keys {
		if len(names) < 2 {
			continue
		}
		sorted := slices.Clone(names)
		slices.Sort(sorted)
		out = append(out, Collision{Key: key, Names: sorted})
	}
	slices.SortFunc(out, func(a, b Collision) int {
		if c := cmp.Compare(len(b.Names), len(a.Names)); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// letterCounts orders letters by descending count.
func letterCounts(counts map[rune]int) []LetterCount {
	out := make([]LetterCount, 0, len(counts))
	for r, c := range counts {
		out = append(out, LetterCount{Letter: r, Count: c})
	}
	slices.SortFunc(out, func(a, b LetterCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Letter, b.Letter)
	})
	return out
}
