package domain

import "errors"

var (
	ErrNotFound     = errors.New("company_profile_not_found")
	ErrNameRequired = errors.New("company_name_required")
)
