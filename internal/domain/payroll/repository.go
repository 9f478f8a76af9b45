package payroll

import "context"

type PayrollRepository interface {
	// Create inserts a payslip
	Create(ctx context.Context, payslip Payslip) (Payslip, error)

	// GetByID retrieves a single payslip
	GetByID(ctx context.Context, id string) (Payslip, error)

	// ListByEmployer retrieves payslips for an employer's employees, newest
	// first
	ListByEmployer(ctx context.Context, employerID string) ([]Payslip, error)

	// UpdateStatus sets the payslip status
	UpdateStatus(ctx context.Context, id string, status PayslipStatus) error
}
