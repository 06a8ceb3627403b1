package gst

import "errors"

var (
	ErrIndeterminateJurisdiction = errors.New("indeterminate_jurisdiction")
	ErrInvalidGSTIN              = errors.New("invalid_gstin")
	ErrInvalidStateCode          = errors.New("invalid_state_code")
	ErrInvalidRate               = errors.New("invalid_rate")
)
