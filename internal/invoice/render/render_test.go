package render

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func fixtureInvoice(t *testing.T) domain.Invoice {
	t.Helper()
	policy, err := gst.ResolvePolicy("21", "21")
	require.NoError(t, err)

	d := decimal.RequireFromString
	return domain.Invoice{
		Number:    "GST-20250409-0007",
		Sequence:  7,
		IssueDate: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		Policy:    policy,
		Seller: domain.Party{
			Name:      "Acme Traders",
			StateCode: "21",
			GSTIN:     "21ABCDE1234F1Z5",
			BankName:  "State Bank",
		},
		Buyer: domain.Party{Name: "Bose Retail", StateCode: "21"},
		Items: []domain.LineItem{
			{
				Description:  "Laptop",
				HSNCode:      "8471",
				Unit:         "Nos",
				Quantity:     d("1"),
				UnitPrice:    d("1000"),
				TaxRate:      d("5"),
				Gross:        d("1000"),
				Discount:     d("0"),
				TaxableValue: d("1000"),
				CGSTAmount:   d("25"),
				SGSTAmount:   d("25"),
				TaxAmount:    d("50"),
				LineTotal:    d("1050"),
			},
		},
		Breakdown: []domain.TaxBreakdownRow{
			{Rate: d("5"), TaxableValue: d("1000"), CGSTAmount: d("25"), SGSTAmount: d("25"), TotalTax: d("50")},
		},
		TotalGross:    d("1000"),
		TotalDiscount: d("0"),
		TotalTaxable:  d("1000"),
		TotalTax:      d("50"),
		GrandTotal:    d("1050"),
		AmountInWords: "One Thousand Fifty Rupees Only",
	}
}

func TestBuild_SectionsInOrder(t *testing.T) {
	doc := Build(fixtureInvoice(t))

	kinds := make([]SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SectionKind{
		SectionHeader, SectionParty, SectionParty, SectionItems,
		SectionTaxSummary, SectionTotals, SectionWords, SectionFooter,
	}, kinds)
}

func TestBuild_NoDerivationAtRenderTime(t *testing.T) {
	inv := fixtureInvoice(t)
	// Deliberately inconsistent grand total: the renderer must echo it,
	// not recompute it.
	inv.GrandTotal = decimal.RequireFromString("9999.99")

	doc := Build(inv)
	totals := doc.Sections[5]
	require.Equal(t, SectionTotals, totals.Kind)
	assert.Equal(t, "9999.99", totals.Fields[4].Value)
}

func TestHTML_Idempotent(t *testing.T) {
	doc := Build(fixtureInvoice(t))

	first, err := HTML(doc)
	require.NoError(t, err)
	second, err := HTML(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "GST-20250409-0007")
	assert.Contains(t, string(first), "One Thousand Fifty Rupees Only")
}

func TestMarkdown_Idempotent(t *testing.T) {
	doc := Build(fixtureInvoice(t))

	first, err := Markdown(doc)
	require.NoError(t, err)
	second, err := Markdown(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "| 5% | 1000.00 | 25.00 | 25.00 | 50.00 |")
}

func TestTargets_StructurallyIdenticalContent(t *testing.T) {
	doc := Build(fixtureInvoice(t))

	html, err := HTML(doc)
	require.NoError(t, err)
	md, err := Markdown(doc)
	require.NoError(t, err)

	// Every field value and every table cell appears in both dialects.
	for _, section := range doc.Sections {
		for _, f := range section.Fields {
			assert.Contains(t, string(html), f.Value)
			assert.Contains(t, string(md), f.Value)
		}
		if section.Table != nil {
			for _, row := range section.Table.Rows {
				for _, cell := range row {
					assert.Contains(t, string(html), cell)
					assert.Contains(t, string(md), cell)
				}
			}
		}
	}
}

func TestTaxSummary_InterstateColumns(t *testing.T) {
	inv := fixtureInvoice(t)
	policy, err := gst.ResolvePolicy("21", "19")
	require.NoError(t, err)
	inv.Policy = policy

	doc := Build(inv)
	summary := doc.Sections[4]
	require.Equal(t, SectionTaxSummary, summary.Kind)
	assert.Equal(t, []string{"GST %", "Taxable", "IGST", "Total Tax"}, summary.Table.Columns)
}
