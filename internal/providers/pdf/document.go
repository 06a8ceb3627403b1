// Package pdf serializes a rendered invoice document to PDF with maroto.
// It is a thin serialization step over the presentational tree; no figure
// is computed here.
package pdf

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/anilkedia87/gstbill/internal/invoice/render"
)

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

// Generate lays out the section tree onto an A4 page.
func (p *Provider) Generate(doc render.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, doc.Title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	for _, section := range doc.Sections {
		m.AddRow(9,
			text.NewCol(12, section.Title, props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Top:   3,
			}),
		)
		for _, field := range section.Fields {
			m.AddRow(5,
				text.NewCol(4, field.Label, props.Text{Size: 9}),
				text.NewCol(8, field.Value, props.Text{Size: 9}),
			)
		}
		if section.Table != nil {
			m.AddRows(tableRows(section.Table)...)
		}
		for _, line := range section.Lines {
			m.AddRow(6,
				text.NewCol(12, line, props.Text{Size: 9}),
			)
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}

func tableRows(table *render.Table) []core.Row {
	widths := columnWidths(len(table.Columns))

	header := make([]core.Col, 0, len(table.Columns))
	for i, column := range table.Columns {
		header = append(header, text.NewCol(widths[i], column, props.Text{
			Size:  8,
			Style: fontstyle.Bold,
		}))
	}
	rows := []core.Row{row.New(6).Add(header...)}

	for _, cells := range table.Rows {
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			cols = append(cols, text.NewCol(widths[i], cell, props.Text{Size: 8}))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

// columnWidths spreads maroto's 12-column grid across n table columns,
// giving leftover width to the leading columns.
func columnWidths(n int) []int {
	if n == 0 {
		return nil
	}
	widths := make([]int, n)
	base := 12 / n
	extra := 12 % n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
