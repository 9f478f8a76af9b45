package cashadvance

import "errors"

var (
	ErrCashAdvanceNotFound = errors.New("cash advance not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
