package gst

// PolicyKind distinguishes the two GST levy compositions.
type PolicyKind string

const (
	// PolicySplit levies CGST+SGST, each at half the applicable rate.
	// Applies when seller and buyer share a jurisdiction.
	PolicySplit PolicyKind = "SPLIT"
	// PolicyUnified levies IGST at the full applicable rate.
	// Applies to interstate supplies.
	PolicyUnified PolicyKind = "UNIFIED"
)

// TaxPolicy is the resolved rate-splitting policy for one invoice. It is
// decided once, from the two jurisdiction codes, and consumed uniformly by
// the line-item calculator.
type TaxPolicy struct {
	Kind        PolicyKind `json:"kind"`
	SellerState StateCode  `json:"seller_state"`
	BuyerState  StateCode  `json:"buyer_state"`
}

// Interstate reports whether the policy levies IGST.
func (p TaxPolicy) Interstate() bool { return p.Kind == PolicyUnified }

// ResolvePolicy decides the tax policy from the seller and buyer
// jurisdiction codes. Both codes are normalized before comparison, so the
// decision is symmetric and whitespace-insensitive. A malformed or absent
// code yields ErrIndeterminateJurisdiction; the caller must resolve it
// explicitly rather than guess.
func ResolvePolicy(sellerState, buyerState string) (TaxPolicy, error) {
	seller, err := ParseStateCode(sellerState)
	if err != nil {
		return TaxPolicy{}, ErrIndeterminateJurisdiction
	}
	buyer, err := ParseStateCode(buyerState)
	if err != nil {
		return TaxPolicy{}, ErrIndeterminateJurisdiction
	}

	kind := PolicyUnified
	if seller == buyer {
		kind = PolicySplit
	}
	return TaxPolicy{Kind: kind, SellerState: seller, BuyerState: buyer}, nil
}
