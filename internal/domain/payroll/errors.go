package payroll

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrInvalidPeriod   = errors.New("period end must be after period start")
)
