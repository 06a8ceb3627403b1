// Package words renders rupee amounts as English text using Indian
// positional grouping: crore, lakh, thousand, hundred. Paise are rendered
// as a separate clause.
package words

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

var (
	ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen"}

	tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
		"Eighty", "Ninety"}
)

// maxExpressible is the largest amount the grammar can say: the crore group
// holds at most three digits (999 crore).
var maxExpressible = decimal.RequireFromString("9999999999.99")

// Amount converts a non-negative rupee amount to words, e.g.
// "One Thousand Fifty Rupees Only" or
// "Twelve Rupees and Fifty Paise Only".
// Amounts the grammar cannot express fail with ErrAmountOutOfRange instead
// of producing truncated text.
func Amount(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: negative amount %s", domain.ErrAmountOutOfRange, amount)
	}
	if amount.GreaterThan(maxExpressible) {
		return "", fmt.Errorf("%w: %s exceeds %s", domain.ErrAmountOutOfRange, amount, maxExpressible)
	}

	rounded := amount.Round(2)
	rupees := rounded.IntPart()
	paise := rounded.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only", nil
	}

	var b strings.Builder
	if rupees > 0 {
		b.WriteString(integer(rupees))
		b.WriteString(" Rupees")
	} else {
		b.WriteString("Zero Rupees")
	}
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(integer(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String(), nil
}

// integer spells a positive integer below 10^10 using Indian groups.
func integer(n int64) string {
	var parts []string
	appendGroup := func(value int64, label string) {
		if value > 0 {
			part := belowThousand(value)
			if label != "" {
				part += " " + label
			}
			parts = append(parts, part)
		}
	}

	appendGroup(n/10000000, "Crore")
	n %= 10000000
	appendGroup(n/100000, "Lakh")
	n %= 100000
	appendGroup(n/1000, "Thousand")
	n %= 1000
	appendGroup(n, "")

	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		if n%10 > 0 {
			parts = append(parts, tens[n/10]+" "+ones[n%10])
		} else {
			parts = append(parts, tens[n/10])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
