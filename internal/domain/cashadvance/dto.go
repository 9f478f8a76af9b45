package cashadvance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

type GrantCashAdvanceRequest struct {
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}

func (r GrantCashAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CashAdvanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
	UpdatedAt    string          `json:"updatedAt"`
}

type LogResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
}

// MapToResponse converts a CashAdvance entity to CashAdvanceResponse.
func MapToResponse(ca CashAdvance) CashAdvanceResponse {
	var employeeName string
	if ca.EmployeeName != nil {
		employeeName = *ca.EmployeeName
	}

	return CashAdvanceResponse{
		ID:           ca.ID,
		EmployeeID:   ca.EmployeeID,
		EmployeeName: employeeName,
		Amount:       ca.Amount,
		UpdatedAt:    ca.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// MapLogToResponse converts a Log entity to LogResponse.
func MapLogToResponse(l Log) LogResponse {
	var employeeID, employeeName string
	if l.EmployeeID != nil {
		employeeID = *l.EmployeeID
	}
	if l.EmployeeName != nil {
		employeeName = *l.EmployeeName
	}

	return LogResponse{
		ID:           l.ID,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Amount:       l.Amount,
		Date:         l.Date.UTC().Format("2006-01-02"),
	}
}
