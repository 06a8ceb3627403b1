// Package domain defines the invoice data model and its computation
// contracts. An Invoice and everything hanging off it is immutable once
// built; changing anything means building a new Invoice.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/anilkedia87/gstbill/internal/gst"
)

// Party is a seller or buyer on an invoice. Parties are shared read-only
// references; they never point back at invoices.
type Party struct {
	Name         string        `json:"name"`
	AddressLines []string      `json:"address_lines,omitempty"`
	City         string        `json:"city,omitempty"`
	State        string        `json:"state,omitempty"`
	PIN          string        `json:"pin,omitempty"`
	StateCode    gst.StateCode `json:"state_code"`
	GSTIN        gst.GSTIN     `json:"gstin,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`

	// Seller-only bank particulars, rendered on the invoice footer.
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	IFSCCode    string `json:"ifsc_code,omitempty"`
}

// LineItemInput is one raw line as supplied by the caller. Every field is
// still a string; the validator performs the single string-to-decimal
// coercion for the whole pipeline. DiscountPercent and DiscountAmount are
// mutually exclusive.
type LineItemInput struct {
	Description     string `json:"description"`
	HSNCode         string `json:"hsn_code"`
	Quantity        string `json:"quantity"`
	Unit            string `json:"unit,omitempty"`
	UnitPrice       string `json:"unit_price"`
	TaxRate         string `json:"tax_rate"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	DiscountAmount  string `json:"discount_amount,omitempty"`
}

// LineItem is one computed invoice line. Monetary figures are rounded
// half-up to two decimals at finalization; they are never recomputed
// downstream.
type LineItem struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`

	Gross        decimal.Decimal `json:"gross"`
	Discount     decimal.Decimal `json:"discount"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
	IGSTAmount   decimal.Decimal `json:"igst_amount"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// TaxBreakdownRow aggregates the items of one rate slab. Under a split
// policy the CGST/SGST columns carry the two half-rate components; under a
// unified policy only IGST is populated.
type TaxBreakdownRow struct {
	Rate         decimal.Decimal `json:"rate"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
	IGSTAmount   decimal.Decimal `json:"igst_amount"`
	TotalTax     decimal.Decimal `json:"total_tax"`
}

// Invoice is the finished, immutable computation result. Item order is the
// presentation order and is preserved exactly as supplied.
type Invoice struct {
	Number    string        `json:"number"`
	Sequence  int64         `json:"sequence"`
	IssueDate time.Time     `json:"issue_date"`
	Policy    gst.TaxPolicy `json:"policy"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	Items     []LineItem        `json:"items"`
	Breakdown []TaxBreakdownRow `json:"breakdown"`

	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalTaxable  decimal.Decimal `json:"total_taxable"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	GrandTotal    decimal.Decimal `json:"grand_total"`

	// AmountInWords is empty only when the grand total exceeds the words
	// grammar's range; the numeric totals stay valid regardless.
	AmountInWords string `json:"amount_in_words,omitempty"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`
}

// Record is the persisted form of a generated invoice. The full computed
// document is stored as JSON so rendering never recomputes figures.
type Record struct {
	ID         snowflake.ID   `gorm:"primaryKey"`
	Number     string         `gorm:"type:text;not null;uniqueIndex"`
	Sequence   int64          `gorm:"not null"`
	IssueDate  time.Time      `gorm:"not null"`
	BuyerName  string         `gorm:"type:text;not null"`
	GrandTotal string         `gorm:"type:text;not null"`
	Document   datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "invoices" }
