package attendance

import (
	"time"
)

type Attendance struct {
	ID            string
	EmployeeID    string
	FingerprintID int
	DeviceID      string
	TimeIn        time.Time
	// TimeOut is nil while the employee is clocked in. When set it is
	// strictly after TimeIn.
	TimeOut   *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusOnTime Status = "ONTIME"
	StatusLate   Status = "LATE"
	// StatusAbsent is reserved for manual corrections; the recorder never
	// writes it.
	StatusAbsent Status = "ABSENT"
)
