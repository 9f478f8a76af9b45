package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is one settled pay period for one employee.
type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Hour buckets produced by the classification engine, rounded to one
	// decimal at aggregation.
	RegularHours  float64
	OvertimeHours float64
	RdotHours     float64
	TotalHours    float64

	CADeduction decimal.Decimal
	GrossPay    decimal.Decimal
	NetPay      decimal.Decimal
	Status      PayslipStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

type PayslipStatus string

const (
	PayslipStatusPending  PayslipStatus = "PENDING"
	PayslipStatusReleased PayslipStatus = "RELEASED"
)
