package domain

import "errors"

var (
	ErrNotFound      = errors.New("hsn_not_found")
	ErrDuplicateCode = errors.New("duplicate_hsn_code")
	ErrInvalidCode   = errors.New("invalid_hsn_code")
	ErrInvalidRate   = errors.New("invalid_hsn_rate")
)
