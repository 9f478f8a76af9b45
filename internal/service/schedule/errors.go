package schedule

import "errors"

// ErrNoShiftConfigured means the employee has no resolvable shift window.
// Period computations skip such records instead of aborting, so one
// misconfigured employee cannot block a whole payroll run.
var ErrNoShiftConfigured = errors.New("no shift configured")
