// Package output provides utilities for formatting and displaying report results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(reports []*sheet.Report) {
	WritePretty(os.Stdout, reports)
}

// WritePretty writes the pretty table form of each report to w.
func WritePretty(w io.Writer, reports []*sheet.Report) {
	for i, report := range reports {
		fmt.Fprintf(w, "--- %s ---\n", report.Name)
		rows := report.Flatten()
		width := labelWidth(rows)
		section := ""
		for _, row := range rows {
			if row.Section != section {
				section = row.Section
				fmt.Fprintf(w, "\n%s\n%s\n", section, strings.Repeat("_", len(section)))
			}
			fmt.Fprintf(w, "%-*s | %s\n", width, row.Label, format.Display(row.Value, row.Format))
		}
		if i < len(reports)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

func labelWidth(rows []sheet.Row) int {
	width := 0
	for _, row := range rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	return width
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(reports []*sheet.Report) {
	WriteCsv(os.Stdout, reports)
}

// WriteCsv writes every report's rows as one CSV table to w.
func WriteCsv(w io.Writer, reports []*sheet.Report) {
	fmt.Fprintf(w, `"report","section","cell","label","value"`)
	fmt.Fprintf(w, "\n")
	for _, report := range reports {
		for _, row := range report.Flatten() {
			fmt.Fprintf(w, `"%s","%s","%s","%s","%s"`,
				csvEscape(report.Name), csvEscape(row.Section), row.Address,
				csvEscape(row.Label), csvEscape(format.Display(row.Value, row.Format)))
			fmt.Fprintf(w, "\n")
		}
	}
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// Document is the JSON shape of one evaluated report.
type Document struct {
	Name     string            `json:"name"`
	Sections []SectionDocument `json:"sections"`
}

// SectionDocument groups the rows of one report section.
type SectionDocument struct {
	Name string      `json:"name"`
	Rows []sheet.Row `json:"rows"`
}

// JSONFormat outputs the reports as an indented JSON document.
func JSONFormat(reports []*sheet.Report) error {
	return WriteJSON(os.Stdout, reports)
}

// WriteJSON writes the reports as one JSON array to w.
func WriteJSON(w io.Writer, reports []*sheet.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Documents(reports))
}

// Documents converts evaluated reports to their JSON document form.
func Documents(reports []*sheet.Report) []Document {
	docs := make([]Document, 0, len(reports))
	for _, report := range reports {
		docs = append(docs, buildDocument(report))
	}
	return docs
}

func buildDocument(report *sheet.Report) Document {
	doc := Document{Name: report.Name}
	for _, row := range report.Flatten() {
		if len(doc.Sections) == 0 || doc.Sections[len(doc.Sections)-1].Name != row.Section {
			doc.Sections = append(doc.Sections, SectionDocument{Name: row.Section})
		}
		last := &doc.Sections[len(doc.Sections)-1]
		last.Rows = append(last.Rows, row)
	}
	return doc
}
