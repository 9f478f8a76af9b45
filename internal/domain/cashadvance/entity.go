package cashadvance

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashAdvance is the running balance per employee. Payroll settlement
// decrements it, clamped at zero.
type CashAdvance struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Log is one grant in the append-only ledger.
type Log struct {
	ID            string
	CashAdvanceID string
	Amount        decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time

	// DTO
	EmployeeID   *string
	EmployeeName *string
}
