package payroll

import "context"

// PayrollService aggregates classification engine output over pay periods
// and settles cash advances.
type PayrollService interface {
	// BuildPeriodSummary classifies every completed record in [start, end]
	// and returns the summed hour buckets
	BuildPeriodSummary(ctx context.Context, employeeID string, start, end string) (PeriodSummaryResponse, error)

	// BuildWeeklySummary returns per-weekday hours for the week weeksAgo
	// back (0 = current week, Monday start)
	BuildWeeklySummary(ctx context.Context, employeeID string, weeksAgo int) (WeeklySummaryResponse, error)

	// CreatePayslip computes pay from the period summary, nets the cash
	// advance deduction against the balance, and persists both
	CreatePayslip(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)

	// ListByEmployer retrieves an employer's payslips, newest first
	ListByEmployer(ctx context.Context, employerID string) ([]PayslipResponse, error)

	// UpdateStatus marks a payslip PENDING or RELEASED
	UpdateStatus(ctx context.Context, req UpdatePayslipStatusRequest) error
}
