package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

type CreatePayslipRequest struct {
	EmployeeID  string          `json:"employeeId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	CADeduction decimal.Decimal `json:"caDeduction"`
}

func (r CreatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "periodStart", Message: "must be a YYYY-MM-DD date"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "periodEnd", Message: "must be a YYYY-MM-DD date"})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "periodEnd", Message: "must be after periodStart"})
	}
	if r.CADeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "caDeduction", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayslipStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r UpdatePayslipStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, []string{string(PayslipStatusPending), string(PayslipStatusReleased)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PENDING or RELEASED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	EmployeeName  string          `json:"employeeName"`
	PeriodStart   string          `json:"periodStart"`
	PeriodEnd     string          `json:"periodEnd"`
	RegularHours  float64         `json:"regularHours"`
	OvertimeHours float64         `json:"overtimeHours"`
	RdotHours     float64         `json:"rdotHours"`
	TotalHours    float64         `json:"totalHours"`
	CADeduction   decimal.Decimal `json:"caDeduction"`
	GrossPay      decimal.Decimal `json:"grossPay"`
	NetPay        decimal.Decimal `json:"netPay"`
	Status        string          `json:"status"`
}

// AttendanceLog is one completed record echoed back with a summary.
type AttendanceLog struct {
	TimeIn  string `json:"timeIn"`
	TimeOut string `json:"timeOut"`
}

type PeriodSummaryResponse struct {
	TotalHours     float64         `json:"totalHours"`
	RegularHours   float64         `json:"regularHours"`
	OvertimeHours  float64         `json:"overtimeHours"`
	RdotHours      float64         `json:"rdotHours"`
	AttendanceLogs []AttendanceLog `json:"attendanceLogs"`
}

type WeeklySummaryResponse struct {
	WeeklyHours   [7]float64 `json:"weeklyHours"`
	RegularHours  float64    `json:"regularHours"`
	OvertimeHours float64    `json:"overtimeHours"`
	RdotHours     float64    `json:"rdotHours"`
}

// MapToResponse converts a Payslip entity to PayslipResponse.
func MapToResponse(p Payslip) PayslipResponse {
	var employeeName string
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}

	return PayslipResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  employeeName,
		PeriodStart:   p.PeriodStart.UTC().Format(time.RFC3339),
		PeriodEnd:     p.PeriodEnd.UTC().Format(time.RFC3339),
		RegularHours:  p.RegularHours,
		OvertimeHours: p.OvertimeHours,
		RdotHours:     p.RdotHours,
		TotalHours:    p.TotalHours,
		CADeduction:   p.CADeduction,
		GrossPay:      p.GrossPay,
		NetPay:        p.NetPay,
		Status:        string(p.Status),
	}
}
