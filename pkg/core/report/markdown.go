package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown renders the report as a markdown document: the headline
// metrics followed by every table as a pipe table.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	irr, npv, roic := r.Headline()
	fmt.Fprintf(&b, "# Feasibility What-If Report\n\n")
	fmt.Fprintf(&b, "Report ID: `%s`\n\n", r.ID)
	fmt.Fprintf(&b, "- **IRR**: %s\n- **NPV**: %s\n- **ROIC**: %s\n", irr, npv, roic)

	for _, t := range r.Tables() {
		fmt.Fprintf(&b, "\n## %s\n\n", t.Name)
		writePipeTable(&b, t)
	}
	return b.String()
}

func writePipeTable(b *strings.Builder, t Table) {
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(c, "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Header)
	b.WriteString("|")
	for range t.Header {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
}

// ValidateMarkdown checks the document parses with Goldmark. Goldmark is
// very permissive, so this is a basic sanity gate rather than a linter.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
