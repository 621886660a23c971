package corpus

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render writes the report as tables. At most top collisions and unmapped
// letters are listed; top <= 0 lists all of them.
func (r *Report) Render(w io.Writer, top int) error {
	var b strings.Builder

	files := newTable("File", "Names", "Levels", "Tokens", "Tokens/Name", "Empty")
	for _, f := range r.Files {
		files.AppendRow(statsRow(f.ID, f.Stats))
	}
	files.AppendFooter(statsRow("total", r.Total))
	b.WriteString(files.Render())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Distinct keys: %s\n", humanize.Comma(int64(r.Distinct)))

	if len(r.Collisions) > 0 {
		collisions := newTable("Key", "Spellings")
		for _, c := range limit(r.Collisions, top) {
			collisions.AppendRow(table.Row{c.Key, strings.Join(c.Names, " | ")})
		}
		b.WriteString("\n")
		b.WriteString(collisions.Render())
		b.WriteString("\n")
	}

	if len(r.Unmapped) > 0 {
		letters := newTable("Letter", "Code Point", "Count")
		for _, l := range limit(r.Unmapped, top) {
			letters.AppendRow(table.Row{string(l.Letter), fmt.Sprintf("U+%04X", l.Letter), humanize.Comma(int64(l.Count))})
		}
		b.WriteString("\nUnmapped letters:\n")
		b.WriteString(letters.Render())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		header[i] = h
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	return tw
}

func statsRow(label string, s Stats) table.Row {
	return table.Row{
		label,
		humanize.Comma(int64(s.Names)),
		humanize.Comma(int64(s.Levels)),
		humanize.Comma(int64(s.Tokens)),
		fmt.Sprintf("%.2f", s.TokensPerName()),
		humanize.Comma(int64(s.Empty)),
	}
}

func limit[T any](items []T, top int) []T {
	if top > 0 && len(items) > top {
		return items[:top]
	}
	return items
}
