package company

import "errors"

var (
	ErrInvalidID          = errors.New("company: invalid id")
	ErrInvalidPage        = errors.New("company: invalid page")
	ErrNameRequired       = errors.New("company: name is required")
	ErrIndustryRequired   = errors.New("company: industry is required")
	ErrCountryRequired    = errors.New("company: country is required")
	ErrEmptyPatch         = errors.New("company: patch sets no field")
	ErrInvalidTrendDays   = errors.New("company: trend window must be 7..365 days")
	ErrInvalidRefreshDays = errors.New("company: refresh window must be 1..365 days")
	ErrNoFocused          = errors.New("company: no focused company")
)
