package timesheet

import (
	"math"
	"time"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
)

// Fixed lunch window, 12:00-13:00. One hour is deducted when the work
// interval strictly contains it.
const (
	lunchStartHour = 12.0
	lunchEndHour   = 13.0
)

// Breakdown is the classification of a single completed attendance record.
// Values are unrounded; rounding to one decimal happens once at the summary
// boundary.
type Breakdown struct {
	RegularHours       float64
	OvertimeHours      float64
	RdotHours          float64
	TotalHours         float64
	LateDeductionHours float64
	// DayIndex is the record's weekday, Monday=0 .. Sunday=6.
	DayIndex int
}

// Summary is a period aggregate of Breakdowns, rounded to one decimal.
type Summary struct {
	RegularHours  float64
	OvertimeHours float64
	RdotHours     float64
	TotalHours    float64
	WeeklyHours   [7]float64
}

// Classifier converts raw time-in/time-out pairs into classified hour
// buckets. It is pure: all I/O happens before records reach it.
type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) *Classifier {
	return &Classifier{loc: loc}
}

// lateTier is one row of the ordered late-deduction table. The first tier
// whose upper bound (inclusive) covers the clock-in wins; clock-ins past
// every bound forfeit the whole gap since shift start.
type lateTier struct {
	upperBound float64
	deduction  float64
}

func (c *Classifier) lateTiers(startHours float64, policy employer.Policy) []lateTier {
	// The threshold-after-late is minutes past the shift's start hour
	// (floor of the start time): an 08:00 start with a 60-minute threshold
	// puts the cutoff at 09:00.
	thresholdHours := math.Floor(startHours) + float64(policy.MinutesThresholdAfterLate)/60

	return []lateTier{
		{upperBound: startHours + float64(policy.GracePeriodInMinutes)/60, deduction: 0},
		{upperBound: thresholdHours, deduction: math.Max(float64(policy.LateDeducInMinutes)/60, 0)},
		{upperBound: startHours + 1, deduction: 1},
	}
}

// Classify computes the hour buckets for one record against its resolved
// shift window and employer policy. Returns ok=false when the record has no
// timeOut (still clocked in) — such records contribute nothing.
func (c *Classifier) Classify(rec attendance.Attendance, win schedule.Window, policy employer.Policy) (Breakdown, bool) {
	if rec.TimeOut == nil {
		return Breakdown{}, false
	}

	timeIn := rec.TimeIn.In(c.loc).Truncate(time.Minute)
	timeOut := rec.TimeOut.In(c.loc)

	timeInHours := hoursOfDay(timeIn)
	timeOutHours := hoursOfDay(timeOut)
	startHours := win.StartHours
	endHours := win.EndHours

	// Overnight wraparound: advance the shift end, and the clock-out when
	// it lands on the next calendar day, by 24 hours before any
	// subtraction.
	if win.CrossesMidnight {
		endHours += 24
	}
	if timeOutHours < timeInHours {
		timeOutHours += 24
	}

	overtimeThresholdHours := endHours + float64(policy.OvertimeThresholdInMinutes)/60

	var deductionHours float64
	matched := false
	for _, tier := range c.lateTiers(startHours, policy) {
		if timeInHours <= tier.upperBound {
			deductionHours = tier.deduction
			matched = true
			break
		}
	}
	if !matched {
		deductionHours = timeInHours - startHours
	}

	var hoursWorked, regularWorked, overtime float64
	switch {
	case timeOutHours >= overtimeThresholdHours:
		overtime = timeOutHours - endHours
		hoursWorked = timeOutHours - timeInHours
		regularWorked = (endHours - startHours) - deductionHours
	case timeOutHours < endHours:
		regularWorked = (timeOutHours - startHours) - deductionHours
		hoursWorked = timeOutHours - timeInHours
	default:
		regularWorked = (endHours - startHours) - deductionHours
		hoursWorked = endHours - timeInHours
	}

	lunchTaken := timeInHours < lunchStartHour && timeOutHours > lunchEndHour
	if lunchTaken {
		hoursWorked -= 1
		regularWorked -= 1
	}

	// Night shifts get a one-hour settling break after their start; worked
	// time before it does not count.
	if win.ShiftType == employee.ShiftTypeNight {
		breakStart := win.StartHours
		if win.CustomStartHours != nil {
			breakStart = *win.CustomStartHours
		}
		breakEndHours := breakStart + 1
		if timeInHours < breakEndHours {
			hoursWorked -= breakEndHours - timeInHours
			regularWorked -= breakEndHours - timeInHours
		}
	}

	b := Breakdown{
		OvertimeHours:      overtime,
		TotalHours:         hoursWorked,
		LateDeductionHours: deductionHours,
		DayIndex:           dayIndex(timeIn),
	}

	// Rest-day routing: the whole worked duration (minus lunch) becomes
	// rest-day overtime and nothing lands in the regular bucket.
	if b.DayIndex == policy.RestDay {
		rdot := timeOutHours - timeInHours
		if lunchTaken {
			rdot -= 1
		}
		b.RdotHours = rdot
	} else {
		b.RegularHours = math.Max(regularWorked, 0)
	}

	return b, true
}

// Summarize folds a set of records into period totals. Open records are
// skipped entirely; per-record regular and weekly contributions are clamped
// at zero so a mis-ordered pair can never drive totals negative. Rounding
// to one decimal happens here and only here.
func (c *Classifier) Summarize(records []attendance.Attendance, win schedule.Window, policy employer.Policy) Summary {
	var s Summary
	for _, rec := range records {
		b, ok := c.Classify(rec, win, policy)
		if !ok {
			continue
		}
		s.RegularHours += b.RegularHours
		s.OvertimeHours += b.OvertimeHours
		s.RdotHours += b.RdotHours
		s.TotalHours += b.TotalHours
		s.WeeklyHours[b.DayIndex] += math.Max(b.TotalHours, 0)
	}

	s.RegularHours = round1(s.RegularHours)
	s.OvertimeHours = round1(s.OvertimeHours)
	s.RdotHours = round1(s.RdotHours)
	s.TotalHours = round1(s.TotalHours)
	for i := range s.WeeklyHours {
		s.WeeklyHours[i] = round1(s.WeeklyHours[i])
	}
	return s
}

// hoursOfDay returns hour + minute/60 in the classifier's zone; seconds are
// dropped, matching how policy times are expressed.
func hoursOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// dayIndex maps a timestamp to Monday=0 .. Sunday=6.
func dayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
