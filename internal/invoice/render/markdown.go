package render

import "strings"

// Markdown serializes a Document to Markdown. The section content is
// byte-for-byte the same data the HTML target renders; only the markup
// differs.
func Markdown(doc Document) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + doc.Title + "\n")
	for _, section := range doc.Sections {
		b.WriteString("\n## " + section.Title + "\n\n")
		for _, f := range section.Fields {
			b.WriteString("- **" + f.Label + "**: " + f.Value + "\n")
		}
		if section.Table != nil {
			writeTable(&b, section.Table)
		}
		for _, line := range section.Lines {
			b.WriteString(line + "\n")
		}
	}
	return []byte(b.String()), nil
}

func writeTable(b *strings.Builder, table *Table) {
	b.WriteString("| " + strings.Join(table.Columns, " | ") + " |\n")

	separators := make([]string, len(table.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range table.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}
