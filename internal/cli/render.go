package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func renderSections(w io.Writer, sections []section, format string) error {
	if len(sections) == 0 {
		_, _ = fmt.Fprintln(w, "(no results)")
		return nil
	}
	for i, s := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		if err := renderSection(w, s, format); err != nil {
			return err
		}
	}
	return nil
}

func renderSection(w io.Writer, s section, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(s.Header)+1)
	header = append(header, "ID")
	for _, h := range s.Header {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, r := range s.Rows {
		line := make(table.Row, 0, len(r.Values)+1)
		line = append(line, int(r.ID))
		for _, v := range r.Values {
			line = append(line, formatValue(v))
		}
		t.AppendRow(line)
	}

	switch format {
	case "csv":
		_, _ = fmt.Fprintf(w, "# %s\n", s.Title)
		t.RenderCSV()
	case "md", "markdown":
		_, _ = fmt.Fprintf(w, "### %s\n\n", s.Title)
		t.RenderMarkdown()
	case "table":
		t.SetTitle(s.Title)
		t.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
