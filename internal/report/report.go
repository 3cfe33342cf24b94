package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format specifies how results are written.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format string (case-insensitive). Unknown values fall
// back to FormatPlain.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable
	case "csv":
		return FormatCSV
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatPlain
	}
}

// Result is one mask operation as shown by the demo.
type Result struct {
	Op     string
	Mask   string
	Func   string
	Input  []int
	Output []int
	Err    error
}

// Write renders results in the given format.
func Write(w io.Writer, results []Result, format Format) error {
	if format == FormatPlain {
		return writePlain(w, results)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)
	t.AppendHeader(table.Row{"op", "mask", "func", "input", "output"})
	for _, r := range results {
		out := JoinInts(r.Output)
		if r.Err != nil {
			out = "(failed)"
		}
		t.AppendRow(table.Row{r.Op, r.Mask, r.Func, JoinInts(r.Input), out})
	}

	switch format {
	case FormatCSV:
		t.RenderCSV()
	case FormatMarkdown:
		t.RenderMarkdown()
	default:
		t.Render()
	}
	return nil
}

// writePlain writes one line per successful result: "<op> mask<flags>: v1 v2 ...".
// Failed results are left to the caller's error stream.
func writePlain(w io.Writer, results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s mask%s: %s\n", r.Op, r.Mask, JoinInts(r.Output)); err != nil {
			return err
		}
	}
	return nil
}

// JoinInts formats values separated by single spaces.
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
