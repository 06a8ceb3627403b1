// Package render maps a finished Invoice onto a presentational section
// tree and serializes that tree into markup dialects. No figure is ever
// derived here; every value comes off the Invoice as-is.
package render

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

// SectionKind identifies a section's role so targets can style it without
// inspecting content.
type SectionKind string

const (
	SectionHeader     SectionKind = "header"
	SectionParty      SectionKind = "party"
	SectionItems      SectionKind = "items"
	SectionTaxSummary SectionKind = "tax_summary"
	SectionTotals     SectionKind = "totals"
	SectionWords      SectionKind = "words"
	SectionFooter     SectionKind = "footer"
)

// Field is one label/value pair.
type Field struct {
	Label string
	Value string
}

// Table is a column-titled grid of already-formatted strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Section is one block of the rendered document.
type Section struct {
	Kind   SectionKind
	Title  string
	Fields []Field
	Table  *Table
	Lines  []string
}

// Document is the target-independent presentational tree. Two targets fed
// the same Document produce structurally identical content and differ only
// in markup syntax.
type Document struct {
	Title    string
	Sections []Section
}

// Build maps an immutable Invoice to its Document. Pure: calling it twice
// with the same Invoice yields identical trees.
func Build(inv domain.Invoice) Document {
	doc := Document{Title: "Tax Invoice " + inv.Number}

	doc.Sections = append(doc.Sections, headerSection(inv))
	doc.Sections = append(doc.Sections, partySection("Seller", inv.Seller))
	doc.Sections = append(doc.Sections, partySection("Buyer", inv.Buyer))
	doc.Sections = append(doc.Sections, itemsSection(inv))
	doc.Sections = append(doc.Sections, taxSummarySection(inv))
	doc.Sections = append(doc.Sections, totalsSection(inv))
	if inv.AmountInWords != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionWords,
			Title: "Amount in Words",
			Lines: []string{inv.AmountInWords},
		})
	}
	if footer := footerSection(inv); footer != nil {
		doc.Sections = append(doc.Sections, *footer)
	}
	return doc
}

func headerSection(inv domain.Invoice) Section {
	levy := "CGST + SGST (intrastate)"
	if inv.Policy.Interstate() {
		levy = "IGST (interstate)"
	}
	return Section{
		Kind:  SectionHeader,
		Title: "Tax Invoice",
		Fields: []Field{
			{Label: "Invoice Number", Value: inv.Number},
			{Label: "Issue Date", Value: inv.IssueDate.Format("02 Jan 2006")},
			{Label: "Levy", Value: levy},
			{Label: "Place of Supply", Value: stateLabel(inv.Policy.BuyerState)},
		},
	}
}

func partySection(title string, p domain.Party) Section {
	fields := []Field{{Label: "Name", Value: p.Name}}
	if addr := strings.Join(p.AddressLines, ", "); addr != "" {
		fields = append(fields, Field{Label: "Address", Value: addr})
	}
	if p.City != "" || p.PIN != "" {
		fields = append(fields, Field{Label: "City", Value: strings.TrimSpace(p.City + " " + p.PIN)})
	}
	fields = append(fields, Field{Label: "State", Value: stateLabel(p.StateCode)})
	if p.GSTIN != "" {
		fields = append(fields, Field{Label: "GSTIN", Value: p.GSTIN.String()})
	}
	if p.Phone != "" {
		fields = append(fields, Field{Label: "Phone", Value: p.Phone})
	}
	if p.Email != "" {
		fields = append(fields, Field{Label: "Email", Value: p.Email})
	}
	return Section{Kind: SectionParty, Title: title, Fields: fields}
}

func itemsSection(inv domain.Invoice) Section {
	table := &Table{
		Columns: []string{"#", "Description", "HSN/SAC", "Qty", "Unit", "Rate", "Discount", "Taxable", "GST %", "Tax", "Total"},
	}
	for i, item := range inv.Items {
		table.Rows = append(table.Rows, []string{
			itoa(i + 1),
			item.Description,
			item.HSNCode,
			formatQuantity(item.Quantity),
			item.Unit,
			money(item.UnitPrice),
			money(item.Discount),
			money(item.TaxableValue),
			percent(item.TaxRate),
			money(item.TaxAmount),
			money(item.LineTotal),
		})
	}
	return Section{Kind: SectionItems, Title: "Items", Table: table}
}

func taxSummarySection(inv domain.Invoice) Section {
	table := &Table{}
	if inv.Policy.Interstate() {
		table.Columns = []string{"GST %", "Taxable", "IGST", "Total Tax"}
		for _, row := range inv.Breakdown {
			table.Rows = append(table.Rows, []string{
				percent(row.Rate), money(row.TaxableValue), money(row.IGSTAmount), money(row.TotalTax),
			})
		}
	} else {
		table.Columns = []string{"GST %", "Taxable", "CGST", "SGST", "Total Tax"}
		for _, row := range inv.Breakdown {
			table.Rows = append(table.Rows, []string{
				percent(row.Rate), money(row.TaxableValue), money(row.CGSTAmount), money(row.SGSTAmount), money(row.TotalTax),
			})
		}
	}
	return Section{Kind: SectionTaxSummary, Title: "Tax Summary", Table: table}
}

func totalsSection(inv domain.Invoice) Section {
	return Section{
		Kind:  SectionTotals,
		Title: "Totals",
		Fields: []Field{
			{Label: "Gross", Value: money(inv.TotalGross)},
			{Label: "Discount", Value: money(inv.TotalDiscount)},
			{Label: "Taxable Value", Value: money(inv.TotalTaxable)},
			{Label: "Total Tax", Value: money(inv.TotalTax)},
			{Label: "Grand Total", Value: money(inv.GrandTotal)},
		},
	}
}

func footerSection(inv domain.Invoice) *Section {
	section := Section{Kind: SectionFooter, Title: "Footer"}
	if inv.Seller.BankName != "" {
		section.Fields = append(section.Fields, Field{Label: "Bank", Value: inv.Seller.BankName})
	}
	if inv.Seller.BankAccount != "" {
		section.Fields = append(section.Fields, Field{Label: "Account", Value: inv.Seller.BankAccount})
	}
	if inv.Seller.IFSCCode != "" {
		section.Fields = append(section.Fields, Field{Label: "IFSC", Value: inv.Seller.IFSCCode})
	}
	if inv.Notes != "" {
		section.Lines = append(section.Lines, inv.Notes)
	}
	if inv.Terms != "" {
		section.Lines = append(section.Lines, inv.Terms)
	}
	if len(section.Fields) == 0 && len(section.Lines) == 0 {
		return nil
	}
	return &section
}

func stateLabel(code gst.StateCode) string {
	if name, ok := gst.StateName(code); ok {
		return name + " (" + string(code) + ")"
	}
	return string(code)
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func percent(v decimal.Decimal) string {
	return v.String() + "%"
}

func formatQuantity(v decimal.Decimal) string {
	return v.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
