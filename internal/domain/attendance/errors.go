package attendance

import "errors"

// Attendance domain errors
var (
	// Clock event errors. Both are expected and recoverable: the device
	// shows the message and must not retry.
	ErrSignedInAlready  = errors.New("already signed in")
	ErrSignedOutAlready = errors.New("already signed out for the day")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidTimeRange   = errors.New("timeOut must be after timeIn")
)

// Wire codes the fingerprint device firmware matches on.
const (
	CodeSignedInAlready  = "SIGNED_IN_ALREADY"
	CodeSignedOutAlready = "SIGNED_OUT_ALREADY"
)
