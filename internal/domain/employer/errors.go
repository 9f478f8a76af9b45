package employer

import "errors"

var (
	ErrEmployerNotFound = errors.New("employer not found")
	ErrEmailExists      = errors.New("email already registered")
)
