package gst

import "github.com/shopspring/decimal"

// StandardRates are the GST rate slabs, in percent. Rates outside this set
// are rejected at validation unless explicitly whitelisted by the caller.
var StandardRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(3),
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// rate slab descriptions, keyed by the integer percent value.
var slabDescriptions = map[int64]string{
	0:  "Exempt/Zero rated",
	3:  "Gold, silver, cut and polished diamonds",
	5:  "Essential items (sugar, tea, coffee, etc.)",
	12: "Computers, processed food, etc.",
	18: "Most goods and services",
	28: "Luxury items, automobiles, etc.",
}

// IsStandardRate reports whether rate is one of the published slabs.
func IsStandardRate(rate decimal.Decimal) bool {
	for _, r := range StandardRates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

// NearestRate returns the standard slab closest to rate, used for
// validation suggestions only.
func NearestRate(rate decimal.Decimal) decimal.Decimal {
	nearest := StandardRates[0]
	distance := rate.Sub(nearest).Abs()
	for _, r := range StandardRates[1:] {
		if d := rate.Sub(r).Abs(); d.LessThan(distance) {
			nearest, distance = r, d
		}
	}
	return nearest
}

// SlabDescription returns the descriptive label of a standard rate slab.
func SlabDescription(rate decimal.Decimal) (string, bool) {
	if !rate.Equal(rate.Truncate(0)) {
		return "", false
	}
	desc, ok := slabDescriptions[rate.IntPart()]
	return desc, ok
}
