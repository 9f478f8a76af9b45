package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
)

// Fallback shift hours when an employee has no custom times. NORMAL uses the
// employer policy instead.
const (
	eveningStartHour = 17.0
	eveningEndHour   = 1.0
	nightStartHour   = 1.0
	nightEndHour     = 9.0
)

// Window is the resolved shift for one employee on one day, expressed in
// fractional hours-of-day (hour + minute/60) in the fixed attendance zone.
type Window struct {
	StartHours float64
	EndHours   float64
	// CrossesMidnight means EndHours belongs to the following calendar day;
	// duration arithmetic must add 24 hours to the end before subtracting.
	CrossesMidnight bool

	ShiftType employee.ShiftType
	// CustomStartHours is set when the employee overrides the policy start.
	// The night-shift pre-shift break anchors on it.
	CustomStartHours *float64
}

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve determines the effective shift window for an employee. Custom
// employee times take precedence over policy regardless of shift type;
// otherwise the shift type picks either the employer's configured hours
// (NORMAL) or the built-in evening/night defaults.
func (r *Resolver) Resolve(emp employee.Employee, policy employer.Policy) (Window, error) {
	win := Window{ShiftType: emp.ShiftType}

	if emp.CustomStartTime != nil && emp.CustomEndTime != nil {
		start, err := ParseTimeOfDay(*emp.CustomStartTime)
		if err != nil {
			return Window{}, fmt.Errorf("%w: customStartTime %q", ErrNoShiftConfigured, *emp.CustomStartTime)
		}
		end, err := ParseTimeOfDay(*emp.CustomEndTime)
		if err != nil {
			return Window{}, fmt.Errorf("%w: customEndTime %q", ErrNoShiftConfigured, *emp.CustomEndTime)
		}
		win.StartHours = start
		win.EndHours = end
		win.CustomStartHours = &start
	} else {
		switch emp.ShiftType {
		case employee.ShiftTypeEvening:
			win.StartHours = eveningStartHour
			win.EndHours = eveningEndHour
		case employee.ShiftTypeNight:
			win.StartHours = nightStartHour
			win.EndHours = nightEndHour
		default:
			start, err := ParseTimeOfDay(policy.WorkStartTime)
			if err != nil {
				return Window{}, fmt.Errorf("%w: workStartTime %q", ErrNoShiftConfigured, policy.WorkStartTime)
			}
			end, err := ParseTimeOfDay(policy.WorkEndTime)
			if err != nil {
				return Window{}, fmt.Errorf("%w: workEndTime %q", ErrNoShiftConfigured, policy.WorkEndTime)
			}
			win.StartHours = start
			win.EndHours = end
		}
	}

	win.CrossesMidnight = win.EndHours <= win.StartHours
	return win, nil
}

// DayWindow returns the attendance-day bounds that bucket a clock event with
// its eventual counterpart. For shifts crossing midnight the day runs from
// noon of the previous day to just before noon of the reference day, so an
// overnight clock-in and its morning clock-out land in the same bucket.
func (w Window) DayWindow(ref time.Time, loc *time.Location) (from, to time.Time) {
	local := ref.In(loc)
	year, month, day := local.Date()

	if w.CrossesMidnight {
		from = time.Date(year, month, day-1, 12, 0, 0, 0, loc)
		to = time.Date(year, month, day, 11, 59, 59, 999999999, loc)
		return from, to
	}

	from = time.Date(year, month, day, 0, 0, 0, 0, loc)
	to = time.Date(year, month, day, 23, 59, 59, 999999999, loc)
	return from, to
}

// ParseTimeOfDay converts an "HH:MM" policy string into fractional
// hours-of-day.
func ParseTimeOfDay(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed time of day %q", s)
	}
	return float64(hours) + float64(minutes)/60, nil
}
