package cashadvance

import "context"

type CashAdvanceService interface {
	// Grant adds to the employee's balance and records the grant in the
	// ledger
	Grant(ctx context.Context, req GrantCashAdvanceRequest) (CashAdvanceResponse, error)

	// ListLogs returns the grant ledger for an employer, newest first
	ListLogs(ctx context.Context, employerID string) ([]LogResponse, error)

	// ListBalances returns the outstanding balance per employee
	ListBalances(ctx context.Context, employerID string) ([]CashAdvanceResponse, error)
}
