package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func intrastate(t *testing.T) gst.TaxPolicy {
	t.Helper()
	policy, err := gst.ResolvePolicy("21", "21")
	require.NoError(t, err)
	return policy
}

func interstate(t *testing.T) gst.TaxPolicy {
	t.Helper()
	policy, err := gst.ResolvePolicy("21", "19")
	require.NoError(t, err)
	return policy
}

func TestCompute_SplitScenario(t *testing.T) {
	item, err := Compute(Input{
		Description: "Consulting",
		Quantity:    d("1"),
		UnitPrice:   d("1000.00"),
		TaxRate:     d("5"),
	}, intrastate(t))
	require.NoError(t, err)

	assert.Equal(t, "1000", item.TaxableValue.String())
	assert.Equal(t, "25", item.CGSTAmount.String())
	assert.Equal(t, "25", item.SGSTAmount.String())
	assert.Equal(t, "50", item.TaxAmount.String())
	assert.Equal(t, "1050", item.LineTotal.String())
	assert.True(t, item.IGSTAmount.IsZero())
}

func TestCompute_UnifiedScenario(t *testing.T) {
	item, err := Compute(Input{
		Description: "Consulting",
		Quantity:    d("1"),
		UnitPrice:   d("1000.00"),
		TaxRate:     d("5"),
	}, interstate(t))
	require.NoError(t, err)

	assert.Equal(t, "50", item.IGSTAmount.String())
	assert.True(t, item.CGSTAmount.IsZero())
	assert.True(t, item.SGSTAmount.IsZero())
	// Policy changes composition, not the total.
	assert.Equal(t, "1050", item.LineTotal.String())
}

func TestCompute_PercentageDiscount(t *testing.T) {
	item, err := Compute(Input{
		Quantity:        d("2"),
		UnitPrice:       d("50000.00"),
		TaxRate:         d("18"),
		DiscountPercent: dp("5"),
	}, interstate(t))
	require.NoError(t, err)

	assert.Equal(t, "100000", item.Gross.String())
	assert.Equal(t, "5000", item.Discount.String())
	assert.Equal(t, "95000", item.TaxableValue.String())
	assert.Equal(t, "17100", item.TaxAmount.String())
	assert.Equal(t, "112100", item.LineTotal.String())
}

func TestCompute_ZeroDiscountBoundary(t *testing.T) {
	item, err := Compute(Input{
		Quantity:        d("3"),
		UnitPrice:       d("99.99"),
		TaxRate:         d("18"),
		DiscountPercent: dp("0"),
	}, intrastate(t))
	require.NoError(t, err)
	assert.True(t, item.TaxableValue.Equal(item.Gross))
}

func TestCompute_FullDiscountBoundary(t *testing.T) {
	// Discount exactly equal to gross is accepted.
	item, err := Compute(Input{
		Quantity:       d("1"),
		UnitPrice:      d("500.00"),
		TaxRate:        d("18"),
		DiscountAmount: dp("500.00"),
	}, intrastate(t))
	require.NoError(t, err)
	assert.True(t, item.TaxableValue.IsZero())
	assert.True(t, item.TaxAmount.IsZero())
}

func TestCompute_DiscountExceedsValue(t *testing.T) {
	_, err := Compute(Input{
		Quantity:       d("1"),
		UnitPrice:      d("500.00"),
		TaxRate:        d("18"),
		DiscountAmount: dp("500.01"),
	}, intrastate(t))
	assert.ErrorIs(t, err, domain.ErrDiscountExceedsValue)
}

func TestCompute_SplitHalvesAlwaysSumExactly(t *testing.T) {
	policy := intrastate(t)
	cases := []Input{
		{Quantity: d("1"), UnitPrice: d("0.01"), TaxRate: d("3")},
		{Quantity: d("1"), UnitPrice: d("33.33"), TaxRate: d("5")},
		{Quantity: d("7"), UnitPrice: d("14.29"), TaxRate: d("18")},
		{Quantity: d("1"), UnitPrice: d("999.95"), TaxRate: d("28")},
		{Quantity: d("13"), UnitPrice: d("7.77"), TaxRate: d("12")},
	}
	for _, in := range cases {
		item, err := Compute(in, policy)
		require.NoError(t, err)
		assert.True(t, item.CGSTAmount.Add(item.SGSTAmount).Equal(item.TaxAmount),
			"cgst %s + sgst %s != tax %s", item.CGSTAmount, item.SGSTAmount, item.TaxAmount)
		// The remainder lands in the second component, off by at most one paisa.
		assert.True(t, item.CGSTAmount.Sub(item.SGSTAmount).Abs().LessThanOrEqual(d("0.01")))
	}
}

func TestCompute_RoundingHalfUp(t *testing.T) {
	// 105.55 * 5% = 5.2775 -> 5.28
	item, err := Compute(Input{
		Quantity:  d("1"),
		UnitPrice: d("105.55"),
		TaxRate:   d("5"),
	}, interstate(t))
	require.NoError(t, err)
	assert.Equal(t, "5.28", item.TaxAmount.String())
}
