package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteJSON writes the run result as indented JSON.
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteSummary prints a human-readable run summary. With styled set,
// headers and counts are colored for terminal output; otherwise the
// table is plain text suitable for pipes.
func WriteSummary(w io.Writer, r Result, styled bool) {
	header := func(s string) string { return s }
	count := func(n int) string { return fmt.Sprintf("%d", n) }
	if styled {
		headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF")).Bold(true)
		countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
		header = func(s string) string { return headerStyle.Render(s) }
		count = func(n int) string { return countStyle.Render(fmt.Sprintf("%d", n)) }
	}

	fmt.Fprintln(w, header("Star disc: "+r.Path))
	fmt.Fprintln(w, strings.Repeat("─", 44))

	rows := []struct {
		label string
		value int
	}{
		{"Catalog rows kept", r.Load.RowsKept},
		{"Catalog rows skipped", r.Load.RowsSkipped},
		{"Stars under magnitude limit", r.Filtered},
		{"Chart-eligible (horizon pass)", r.Visible},
		{"Kept for constellation edges", r.KeptForEdges},
		{"Ephemeris failures", r.EphemErrors},
		{"Markers drawn", r.Render.StarsDrawn},
		{"Markers out of bounds", r.Render.StarsOutOfBounds},
		{"Constellation edges drawn", r.Render.EdgesDrawn},
		{"Constellation edges skipped", r.Render.EdgesSkipped},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-32s %s\n", row.label, count(row.value))
	}

	if len(r.Render.Labeled) > 0 {
		fmt.Fprintf(w, "%-32s %s\n", "Labeled stars", strings.Join(r.Render.Labeled, ", "))
	}
}
