package response

import (
	"errors"
	"net/http"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/cashadvance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrSignedInAlready):
		BadRequest(w, "Already signed in", nil)
	case errors.Is(err, attendance.ErrSignedOutAlready):
		BadRequest(w, "Already signed out", nil)
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "timeOut must be after timeIn", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDeviceNotFound):
		NotFound(w, "Device not found")

	// Employer domain errors
	case errors.Is(err, employer.ErrEmployerNotFound):
		NotFound(w, "Employer not found")
	case errors.Is(err, employer.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Cash advance domain errors
	case errors.Is(err, cashadvance.ErrCashAdvanceNotFound):
		NotFound(w, "Cash advance not found")
	case errors.Is(err, cashadvance.ErrInvalidAmount):
		BadRequest(w, "Amount must be positive", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
