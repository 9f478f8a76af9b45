package cashadvance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CashAdvanceRepository interface {
	// Grant increments (or creates) the employee's balance and appends a
	// ledger entry
	Grant(ctx context.Context, employeeID string, amount decimal.Decimal, date time.Time) (CashAdvance, error)

	// GetBalance returns the current balance, zero when no advance exists
	GetBalance(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// Settle decrements the balance by amount, never below zero
	Settle(ctx context.Context, employeeID string, amount decimal.Decimal) error

	// ListLogsByEmployer returns the grant ledger, newest first
	ListLogsByEmployer(ctx context.Context, employerID string) ([]Log, error)

	// ListBalancesByEmployer returns per-employee balances
	ListBalancesByEmployer(ctx context.Context, employerID string) ([]CashAdvance, error)
}
