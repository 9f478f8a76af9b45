package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	EmployerID string
	EmpCode    string
	FullName   string
	Email      string
	Phone      *string
	Position   *string
	DailyRate  decimal.Decimal
	HireDate   time.Time

	// Shift configuration. CustomStartTime/CustomEndTime are "HH:MM" and,
	// when set, override the employer policy for any shift type.
	ShiftType       ShiftType
	CustomStartTime *string
	CustomEndTime   *string

	// Enrollment. An employee is bound to exactly one device but may have
	// several fingerprint templates, all resolving back to them.
	DeviceID       *string
	FingerEnrolled bool
	IsActive       bool
	Fingerprints   []Fingerprint

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fingerprint is one enrolled template on the employee's device.
type Fingerprint struct {
	ID       string
	FingerID int
}

type ShiftType string

const (
	ShiftTypeNormal  ShiftType = "NORMAL"
	ShiftTypeEvening ShiftType = "EVENING"
	ShiftTypeNight   ShiftType = "NIGHT"
)

// FirstName returns the leading word of the full name; the fingerprint
// device display greets employees by it.
func (e Employee) FirstName() string {
	for i := 0; i < len(e.FullName); i++ {
		if e.FullName[i] == ' ' {
			return e.FullName[:i]
		}
	}
	return e.FullName
}
