package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// recorder calls FindOpenInWindow/Create/Close inside a transaction so the
// lookup-then-write sequence is atomic per employee.
type AttendanceRepository interface {
	// Create inserts a new record (a clock-in)
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// FindOpenInWindow returns the record whose timeIn falls inside the
	// attendance-day window [from, to], open or closed, locking the row
	// when running inside a transaction. Returns nil when none exists.
	FindOpenInWindow(ctx context.Context, employeeID string, from, to time.Time) (*Attendance, error)

	// Close sets timeOut on an open record
	Close(ctx context.Context, id string, timeOut time.Time) error

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByEmployer retrieves records for all of an employer's employees,
	// newest first
	ListByEmployer(ctx context.Context, employerID string, limit int) ([]Attendance, error)

	// ListForPeriod retrieves completed and open records for one employee
	// whose timeIn falls within [from, to], oldest first
	ListForPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// UpdateTimes applies a manual correction; nil leaves a field untouched
	UpdateTimes(ctx context.Context, id string, timeIn, timeOut *time.Time) (Attendance, error)
}
