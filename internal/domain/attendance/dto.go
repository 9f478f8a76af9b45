package attendance

import (
	"time"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

// ClockEventRequest is a raw event from a fingerprint device. TimeIn is an
// optional explicit timestamp; when nil the server clock is used.
type ClockEventRequest struct {
	DeviceToken string
	FingerID    int
	TimeIn      *time.Time
}

func (r ClockEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceToken) {
		errs = append(errs, validator.ValidationError{Field: "deviceToken", Message: "is required"})
	}
	if r.FingerID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "fingerId", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClockEventResult carries what the device displays: the employee's first
// name and either the recorded clock-in or the completing clock-out.
type ClockEventResult struct {
	Name      string
	TimeIn    *time.Time
	TimeOut   *time.Time
	ClockedIn bool
}

type CorrectAttendanceRequest struct {
	ID      string
	TimeIn  string `json:"timeIn"`
	TimeOut string `json:"timeOut"`
}

func (r CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.TimeIn != "" {
		if _, ok := validator.IsValidDateTime(r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "timeIn", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.TimeOut != "" {
		if _, ok := validator.IsValidDateTime(r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "timeOut", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	FingerprintID int     `json:"fingerprintId"`
	DeviceID      string  `json:"deviceId"`
	TimeIn        string  `json:"timeIn"`
	TimeOut       *string `json:"timeOut"`
	Status        string  `json:"status"`
}

// MapToResponse converts an Attendance entity to AttendanceResponse with
// ISO8601 timestamps.
func MapToResponse(att Attendance) AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	var timeOut *string
	if att.TimeOut != nil {
		formatted := att.TimeOut.UTC().Format(time.RFC3339)
		timeOut = &formatted
	}

	return AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  employeeName,
		FingerprintID: att.FingerprintID,
		DeviceID:      att.DeviceID,
		TimeIn:        att.TimeIn.UTC().Format(time.RFC3339),
		TimeOut:       timeOut,
		Status:        string(att.Status),
	}
}
