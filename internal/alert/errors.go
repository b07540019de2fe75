package alert

import "errors"

var (
	ErrInvalidID        = errors.New("alert: invalid id")
	ErrInvalidCompanyID = errors.New("alert: invalid company id")
)
