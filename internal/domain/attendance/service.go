package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// HandleClockEvent runs the per-event state machine: it either opens a
	// new record, closes the open one, or rejects the event.
	HandleClockEvent(ctx context.Context, req ClockEventRequest) (ClockEventResult, error)

	// List retrieves an employer's attendance log, newest first
	List(ctx context.Context, employerID string, limit int) ([]AttendanceResponse, error)

	// Correct applies a manual time correction without re-running
	// classification
	Correct(ctx context.Context, req CorrectAttendanceRequest) (AttendanceResponse, error)
}
