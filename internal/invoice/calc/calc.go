// Package calc computes the monetary figures of a single invoice line.
// All arithmetic is exact decimal; every monetary figure is rounded
// half-up to two places at the point it is finalized, and unrounded
// intermediates are never carried across figures.
package calc

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

var hundred = decimal.NewFromInt(100)

// Input is one validated line: quantity, price and rate already coerced to
// decimals, at most one of the discount fields set.
type Input struct {
	Description     string
	HSNCode         string
	Unit            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
}

// Compute finalizes one line under the given policy.
//
// Under a split policy the tax is divided into two half-rate components:
// the first is rounded independently and the second absorbs the rounding
// remainder, so the two always sum exactly to the line's tax amount.
func Compute(in Input, policy gst.TaxPolicy) (domain.LineItem, error) {
	if in.Quantity.Sign() <= 0 || in.UnitPrice.Sign() < 0 || in.TaxRate.Sign() < 0 {
		// Validation guarantees these; reaching here is a programming error.
		return domain.LineItem{}, fmt.Errorf("calc: unvalidated input: qty=%s price=%s rate=%s",
			in.Quantity, in.UnitPrice, in.TaxRate)
	}

	gross := in.Quantity.Mul(in.UnitPrice).Round(2)

	discount := decimal.Zero
	switch {
	case in.DiscountPercent != nil:
		discount = gross.Mul(*in.DiscountPercent).Div(hundred).Round(2)
	case in.DiscountAmount != nil:
		discount = in.DiscountAmount.Round(2)
	}
	if discount.GreaterThan(gross) {
		return domain.LineItem{}, fmt.Errorf("%w: discount %s on gross %s",
			domain.ErrDiscountExceedsValue, discount, gross)
	}

	taxable := gross.Sub(discount)
	taxAmount := taxable.Mul(in.TaxRate).Div(hundred).Round(2)

	item := domain.LineItem{
		Description:  in.Description,
		HSNCode:      in.HSNCode,
		Unit:         in.Unit,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		TaxRate:      in.TaxRate,
		Gross:        gross,
		Discount:     discount,
		TaxableValue: taxable,
		TaxAmount:    taxAmount,
		LineTotal:    taxable.Add(taxAmount),
	}

	if policy.Interstate() {
		item.IGSTAmount = taxAmount
		item.CGSTAmount = decimal.Zero
		item.SGSTAmount = decimal.Zero
	} else {
		halfRate := in.TaxRate.Div(decimal.NewFromInt(2))
		cgst := taxable.Mul(halfRate).Div(hundred).Round(2)
		item.CGSTAmount = cgst
		item.SGSTAmount = taxAmount.Sub(cgst)
		item.IGSTAmount = decimal.Zero
	}
	return item, nil
}
