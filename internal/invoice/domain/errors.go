package domain

import (
	"errors"
	"strings"
)

var (
	ErrDiscountExceedsValue = errors.New("discount_exceeds_value")
	ErrAmountOutOfRange     = errors.New("amount_out_of_range")
	ErrDuplicateNumber      = errors.New("duplicate_invoice_number")
	ErrNotFound             = errors.New("invoice_not_found")
	ErrUnknownRenderTarget  = errors.New("unknown_render_target")
)

// ValidationError is one structural problem, attributed to a field.
// Suggestion carries advisory free text (a close HSN match, a jurisdiction
// hint) and never blocks.
type ValidationError struct {
	Field      string `json:"field"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationErrors is the ordered, accumulated error list for one
// generation attempt. It is surfaced as data, never raised one problem at
// a time.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation error"
	}
	fields := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		fields = append(fields, e.Field)
	}
	return "validation error: " + strings.Join(fields, ", ")
}

// Add appends one error, preserving order.
func (v *ValidationErrors) Add(field, code, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Code: code, Message: message})
}

// AddWithSuggestion appends one error carrying an advisory hint.
func (v *ValidationErrors) AddWithSuggestion(field, code, message, suggestion string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Code: code, Message: message, Suggestion: suggestion})
}

// Empty reports whether any error accumulated.
func (v *ValidationErrors) Empty() bool { return len(v.Errors) == 0 }
