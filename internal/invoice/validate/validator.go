// Package validate checks invoice inputs before any computation runs.
// Structural problems accumulate into one ordered list so the caller can
// present every problem in a single interaction; advisory suggestions are
// attached but never block.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/gst"
	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
	"github.com/anilkedia87/gstbill/internal/invoice/calc"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

// CodeLookup is the slice of the HSN registry the validator needs for
// format checks and advisory suggestions.
type CodeLookup interface {
	Lookup(code string) (hsndomain.Entry, error)
	Suggest(description string, limit int) []hsndomain.Suggestion
}

// Validator coerces and checks a GenerateRequest. The zero value is not
// usable; construct with New.
type Validator struct {
	codes CodeLookup
}

func New(codes CodeLookup) *Validator {
	return &Validator{codes: codes}
}

// Result carries the coerced inputs once validation passes.
type Result struct {
	Seller Party
	Buyer  Party
	Items  []calc.Input
}

// Party is the validated party with its jurisdiction resolved.
type Party struct {
	domain.Party
}

// Validate runs all checks in a fixed order: required fields, registration
// identifier format, classification code format, tax rate membership,
// quantity, unit price, then discount constraints. Per field it stops at
// the first failure, but it keeps accumulating across independent fields
// and items. On any structural error it returns (*domain.ValidationErrors)
// as the error.
func (v *Validator) Validate(req domain.GenerateRequest) (Result, error) {
	verrs := &domain.ValidationErrors{}

	seller := v.party("seller", req.Seller, verrs)
	buyer := v.party("buyer", req.Buyer, verrs)

	if len(req.Items) == 0 {
		verrs.Add("items", "required", "at least one line item is required")
	}

	items := make([]calc.Input, 0, len(req.Items))
	for i, in := range req.Items {
		if item, ok := v.item(i, in, verrs); ok {
			items = append(items, item)
		}
	}

	if !verrs.Empty() {
		return Result{}, verrs
	}
	return Result{Seller: seller, Buyer: buyer, Items: items}, nil
}

func (v *Validator) party(prefix string, in domain.PartyInput, verrs *domain.ValidationErrors) Party {
	out := Party{domain.Party{
		Name:         strings.TrimSpace(in.Name),
		AddressLines: in.AddressLines,
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		PIN:          strings.TrimSpace(in.PIN),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		BankName:     strings.TrimSpace(in.BankName),
		BankAccount:  strings.TrimSpace(in.BankAccount),
		IFSCCode:     strings.TrimSpace(in.IFSCCode),
	}}

	if out.Name == "" {
		verrs.Add(prefix+".name", "required", "name is required")
	}

	// Registration identifier, when present, must parse; the jurisdiction
	// then derives from it. Otherwise an explicit state code is required.
	if raw := strings.TrimSpace(in.GSTIN); raw != "" {
		gstin, err := gst.ParseGSTIN(raw)
		if err != nil {
			verrs.Add(prefix+".gstin", "invalid_gstin", reason(err))
		} else {
			out.GSTIN = gstin
			out.StateCode = gstin.StateCode()
		}
	}
	if out.StateCode == "" {
		code, err := gst.ParseStateCode(in.StateCode)
		if err != nil {
			hint := "supply a two-digit GST state code or a valid GSTIN"
			verrs.AddWithSuggestion(prefix+".state_code", "indeterminate_jurisdiction",
				"jurisdiction cannot be determined", hint)
		} else {
			out.StateCode = code
		}
	}
	if out.State == "" && out.StateCode != "" {
		if name, ok := gst.StateName(out.StateCode); ok {
			out.State = name
		}
	}
	return out
}

func (v *Validator) item(idx int, in domain.LineItemInput, verrs *domain.ValidationErrors) (calc.Input, bool) {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", idx, name) }
	before := len(verrs.Errors)

	out := calc.Input{
		Description: strings.TrimSpace(in.Description),
		Unit:        strings.TrimSpace(in.Unit),
	}
	if out.Unit == "" {
		out.Unit = "Nos"
	}
	if out.Description == "" {
		verrs.Add(field("description"), "required", "description is required")
	}

	if raw := strings.TrimSpace(in.HSNCode); raw == "" {
		verrs.AddWithSuggestion(field("hsn_code"), "required",
			"classification code is required", v.suggestCode(out.Description))
	} else if _, err := v.codes.Lookup(raw); err != nil && !errors.Is(err, hsndomain.ErrNotFound) {
		// A registry miss is advisory only; a malformed code blocks.
		verrs.AddWithSuggestion(field("hsn_code"), "invalid_hsn_code", reason(err),
			v.suggestCode(out.Description))
	} else {
		out.HSNCode = raw
	}

	if rate, ok := v.decimalField(field("tax_rate"), in.TaxRate, true, verrs); ok {
		if !gst.IsStandardRate(rate) {
			nearest := gst.NearestRate(rate)
			verrs.AddWithSuggestion(field("tax_rate"), "invalid_tax_rate",
				fmt.Sprintf("tax rate %s is not a standard GST slab", rate),
				fmt.Sprintf("nearest standard rate is %s%%", nearest))
		} else {
			out.TaxRate = rate
		}
	}

	if qty, ok := v.decimalField(field("quantity"), in.Quantity, true, verrs); ok {
		if qty.Sign() <= 0 {
			verrs.Add(field("quantity"), "invalid_quantity", "quantity must be greater than zero")
		} else {
			out.Quantity = qty
		}
	}

	if price, ok := v.decimalField(field("unit_price"), in.UnitPrice, true, verrs); ok {
		if price.Sign() < 0 {
			verrs.Add(field("unit_price"), "invalid_unit_price", "unit price cannot be negative")
		} else {
			out.UnitPrice = price
		}
	}

	hasPercent := strings.TrimSpace(in.DiscountPercent) != ""
	hasAmount := strings.TrimSpace(in.DiscountAmount) != ""
	switch {
	case hasPercent && hasAmount:
		verrs.Add(field("discount"), "conflicting_discount",
			"discount percent and discount amount are mutually exclusive")
	case hasPercent:
		if pct, ok := v.decimalField(field("discount_percent"), in.DiscountPercent, true, verrs); ok {
			if pct.Sign() < 0 || pct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
				verrs.Add(field("discount_percent"), "invalid_discount",
					"discount percent must be in [0, 100)")
			} else {
				out.DiscountPercent = &pct
			}
		}
	case hasAmount:
		if amt, ok := v.decimalField(field("discount_amount"), in.DiscountAmount, true, verrs); ok {
			if amt.Sign() < 0 {
				verrs.Add(field("discount_amount"), "invalid_discount",
					"discount amount cannot be negative")
			} else {
				out.DiscountAmount = &amt
			}
		}
	}

	return out, len(verrs.Errors) == before
}

// decimalField performs the single string-to-decimal coercion of the
// pipeline.
func (v *Validator) decimalField(field, raw string, required bool, verrs *domain.ValidationErrors) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			verrs.Add(field, "required", "value is required")
		}
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		verrs.Add(field, "invalid_number", fmt.Sprintf("%q is not a valid number", raw))
		return decimal.Decimal{}, false
	}
	return value, true
}

// suggestCode returns a close classification-code match for the item
// description, or empty when nothing scores.
func (v *Validator) suggestCode(description string) string {
	suggestions := v.codes.Suggest(description, 1)
	if len(suggestions) == 0 {
		return ""
	}
	s := suggestions[0]
	return fmt.Sprintf("did you mean %s (%s, %s%%)?", s.Code, s.Description, s.SuggestedRate)
}

// reason strips the sentinel prefix from a wrapped domain error for
// user-facing messages.
func reason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
