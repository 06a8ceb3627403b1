package domain

import "context"

// PartyInput mirrors Party with raw string fields, validated and coerced
// at the validator boundary.
type PartyInput struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PIN          string   `json:"pin,omitempty"`
	StateCode    string   `json:"state_code,omitempty"`
	GSTIN        string   `json:"gstin,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	BankName     string   `json:"bank_name,omitempty"`
	BankAccount  string   `json:"bank_account,omitempty"`
	IFSCCode     string   `json:"ifsc_code,omitempty"`
}

// GenerateRequest is the single computation entry point's input: two
// parties and one ordered list of raw line items.
type GenerateRequest struct {
	Seller PartyInput      `json:"seller"`
	Buyer  PartyInput      `json:"buyer"`
	Items  []LineItemInput `json:"items"`
	Notes  string          `json:"notes,omitempty"`
	Terms  string          `json:"terms,omitempty"`
}

// RenderTarget selects a presentational dialect.
type RenderTarget string

const (
	RenderHTML     RenderTarget = "html"
	RenderMarkdown RenderTarget = "markdown"
	RenderPDF      RenderTarget = "pdf"
)

// Service generates, stores and renders invoices. Generate returns
// *ValidationErrors (as error) carrying the complete ordered problem list
// when the inputs are structurally invalid.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (Invoice, error)
	GetByNumber(ctx context.Context, number string) (Invoice, error)
	List(ctx context.Context) ([]Record, error)
	Render(ctx context.Context, number string, target RenderTarget) ([]byte, error)
}
