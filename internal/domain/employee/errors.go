package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDeviceNotFound   = errors.New("no valid device registered")
)
