package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/hsn/registry"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func newValidator() *Validator {
	return New(registry.New())
}

func validRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		Seller: domain.PartyInput{
			Name:  "Acme Traders",
			GSTIN: "21ABCDE1234F1Z5",
		},
		Buyer: domain.PartyInput{
			Name:      "Bose Retail",
			StateCode: "19",
		},
		Items: []domain.LineItemInput{
			{
				Description: "Laptop",
				HSNCode:     "8471",
				Quantity:    "1",
				UnitPrice:   "1000.00",
				TaxRate:     "5",
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	res, err := newValidator().Validate(validRequest())
	require.NoError(t, err)

	assert.Equal(t, gst.StateCode("21"), res.Seller.StateCode)
	assert.Equal(t, "Odisha", res.Seller.State)
	assert.Equal(t, gst.StateCode("19"), res.Buyer.StateCode)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Nos", res.Items[0].Unit)
	assert.Equal(t, "8471", res.Items[0].HSNCode)
}

func TestValidate_AccumulatesAcrossFieldsAndItems(t *testing.T) {
	req := validRequest()
	req.Seller.Name = ""
	req.Items = []domain.LineItemInput{
		{Description: "", HSNCode: "12", Quantity: "0", UnitPrice: "-1", TaxRate: "7"},
		{Description: "Rice bag", HSNCode: "1006", Quantity: "2", UnitPrice: "55", TaxRate: "5"},
	}

	_, err := newValidator().Validate(req)
	require.Error(t, err)

	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs.Errors))
	for _, e := range verrs.Errors {
		fields = append(fields, e.Field)
	}
	// Complete list, in declaration order, first item's problems all present.
	assert.Equal(t, []string{
		"seller.name",
		"items[0].description",
		"items[0].hsn_code",
		"items[0].tax_rate",
		"items[0].quantity",
		"items[0].unit_price",
	}, fields)
}

func TestValidate_NearestRateSuggestion(t *testing.T) {
	req := validRequest()
	req.Items[0].TaxRate = "17"

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "invalid_tax_rate", verrs.Errors[0].Code)
	assert.Contains(t, verrs.Errors[0].Suggestion, "18%")
}

func TestValidate_MissingCodeSuggestsFromDescription(t *testing.T) {
	req := validRequest()
	req.Items[0].HSNCode = ""
	req.Items[0].Description = "gaming laptop"

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "required", verrs.Errors[0].Code)
	assert.Contains(t, verrs.Errors[0].Suggestion, "8471")
}

func TestValidate_UnknownCodeDoesNotBlock(t *testing.T) {
	req := validRequest()
	req.Items[0].HSNCode = "4242"

	res, err := newValidator().Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "4242", res.Items[0].HSNCode)
}

func TestValidate_MutuallyExclusiveDiscounts(t *testing.T) {
	req := validRequest()
	req.Items[0].DiscountPercent = "5"
	req.Items[0].DiscountAmount = "50"

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "conflicting_discount", verrs.Errors[0].Code)
}

func TestValidate_DiscountPercentBounds(t *testing.T) {
	req := validRequest()
	req.Items[0].DiscountPercent = "100"

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "invalid_discount", verrs.Errors[0].Code)

	req.Items[0].DiscountPercent = "0"
	_, err = newValidator().Validate(req)
	assert.NoError(t, err)
}

func TestValidate_IndeterminateJurisdiction(t *testing.T) {
	req := validRequest()
	req.Buyer.StateCode = ""
	req.Buyer.GSTIN = ""

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, "indeterminate_jurisdiction", verrs.Errors[0].Code)
	assert.NotEmpty(t, verrs.Errors[0].Suggestion)
}

func TestValidate_BadGSTIN(t *testing.T) {
	req := validRequest()
	req.Seller.GSTIN = "21ABCDE1234F1A9"
	req.Seller.StateCode = "21"

	_, err := newValidator().Validate(req)
	var verrs *domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "invalid_gstin", verrs.Errors[0].Code)
}
