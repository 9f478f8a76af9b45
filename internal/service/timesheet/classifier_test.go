package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/attendance"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employee"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/fixtures"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
)

var testLoc = time.FixedZone("UTC+8", 8*3600)

// 2026-03-09 is a Monday, 2026-03-08 a Sunday (the default rest day).
func monday(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, testLoc)
}

func sunday(hour, min int) time.Time {
	return time.Date(2026, time.March, 8, hour, min, 0, 0, testLoc)
}

func record(timeIn time.Time, timeOut *time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		TimeIn:     timeIn,
		TimeOut:    timeOut,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func dayWindow() schedule.Window {
	return schedule.Window{StartHours: 8, EndHours: 17, ShiftType: employee.ShiftTypeNormal}
}

func TestClassifyDayShift(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	tests := []struct {
		name         string
		timeIn       time.Time
		timeOut      time.Time
		wantRegular  float64
		wantOvertime float64
		wantTotal    float64
		wantLateDed  float64
	}{
		{
			name:        "on time full day",
			timeIn:      monday(8, 0),
			timeOut:     monday(17, 0),
			wantRegular: 8,
			wantTotal:   8,
		},
		{
			name:        "clock-in at grace boundary is not late",
			timeIn:      monday(8, 15),
			timeOut:     monday(17, 0),
			wantRegular: 8,
			wantTotal:   7.75,
		},
		{
			name:        "within grace period",
			timeIn:      monday(8, 10),
			timeOut:     monday(17, 0),
			wantRegular: 8,
			wantTotal:   17 - (8.0 + 10.0/60) - 1,
		},
		{
			name:        "late past grace forfeits the fixed deduction",
			timeIn:      monday(8, 20),
			timeOut:     monday(17, 0),
			wantRegular: 7,
			wantTotal:   17 - (8.0 + 20.0/60) - 1,
			wantLateDed: 1,
		},
		{
			name:        "late at the threshold hour still costs one hour",
			timeIn:      monday(9, 0),
			timeOut:     monday(17, 0),
			wantRegular: 7,
			wantTotal:   7,
			wantLateDed: 1,
		},
		{
			name:        "very late forfeits the whole gap",
			timeIn:      monday(9, 30),
			timeOut:     monday(17, 0),
			wantRegular: 6.5,
			wantTotal:   17 - 9.5 - 1,
			wantLateDed: 1.5,
		},
		{
			name:         "clock-out past overtime threshold accrues overtime",
			timeIn:       monday(8, 0),
			timeOut:      monday(18, 0),
			wantRegular:  8,
			wantOvertime: 1,
			wantTotal:    9,
		},
		{
			name:        "clock-out inside overtime threshold accrues nothing extra",
			timeIn:      monday(8, 0),
			timeOut:     monday(17, 20),
			wantRegular: 8,
			wantTotal:   8,
		},
		{
			name:        "early leave prorates regular hours",
			timeIn:      monday(8, 0),
			timeOut:     monday(16, 0),
			wantRegular: 7,
			wantTotal:   7,
		},
		{
			name:        "lunch not deducted when not strictly contained",
			timeIn:      monday(8, 0),
			timeOut:     monday(12, 30),
			wantRegular: 4.5,
			wantTotal:   4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := c.Classify(record(tt.timeIn, timePtr(tt.timeOut)), dayWindow(), policy)
			require.True(t, ok)

			assert.InDelta(t, tt.wantRegular, b.RegularHours, 1e-9, "regular")
			assert.InDelta(t, tt.wantOvertime, b.OvertimeHours, 1e-9, "overtime")
			assert.InDelta(t, tt.wantTotal, b.TotalHours, 1e-9, "total")
			assert.InDelta(t, tt.wantLateDed, b.LateDeductionHours, 1e-9, "deduction")
			assert.Zero(t, b.RdotHours)
			assert.Equal(t, 0, b.DayIndex)
		})
	}
}

func TestClassifyOpenRecordSkipped(t *testing.T) {
	c := NewClassifier(testLoc)

	_, ok := c.Classify(record(monday(8, 0), nil), dayWindow(), fixtures.DefaultPolicy())
	assert.False(t, ok)
}

func TestClassifyRestDay(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	b, ok := c.Classify(record(sunday(8, 0), timePtr(sunday(17, 0))), dayWindow(), policy)
	require.True(t, ok)

	assert.Zero(t, b.RegularHours)
	assert.InDelta(t, 8.0, b.RdotHours, 1e-9)
	assert.InDelta(t, 8.0, b.TotalHours, 1e-9)
	assert.Equal(t, 6, b.DayIndex)
}

func TestClassifyNightShift(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	win := schedule.Window{StartHours: 1, EndHours: 9, ShiftType: employee.ShiftTypeNight}

	t.Run("pre-shift break deducted", func(t *testing.T) {
		b, ok := c.Classify(record(monday(0, 50), timePtr(monday(9, 5))), win, policy)
		require.True(t, ok)

		// Arrived 70 minutes before break end, so that span does not count.
		breakLoss := 2.0 - (0.0 + 50.0/60)
		assert.InDelta(t, 8.0-breakLoss, b.RegularHours, 1e-9)
		assert.InDelta(t, 9.0-(50.0/60)-breakLoss, b.TotalHours, 1e-9)
		assert.Zero(t, b.OvertimeHours)
	})

	t.Run("break anchors on custom start", func(t *testing.T) {
		customStart := 0.5
		customWin := schedule.Window{
			StartHours:       0.5,
			EndHours:         8.5,
			ShiftType:        employee.ShiftTypeNight,
			CustomStartHours: &customStart,
		}

		b, ok := c.Classify(record(monday(0, 35), timePtr(monday(8, 30))), customWin, policy)
		require.True(t, ok)

		breakLoss := 1.5 - (35.0 / 60)
		assert.InDelta(t, 8.0-breakLoss, b.RegularHours, 1e-9)
	})
}

func TestClassifyOvernightShift(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	win := schedule.Window{
		StartHours:      17,
		EndHours:        1,
		CrossesMidnight: true,
		ShiftType:       employee.ShiftTypeEvening,
	}

	t.Run("clock-out after midnight wraps forward", func(t *testing.T) {
		timeOut := time.Date(2026, time.March, 10, 1, 0, 0, 0, testLoc)
		b, ok := c.Classify(record(monday(17, 5), timePtr(timeOut)), win, policy)
		require.True(t, ok)

		assert.InDelta(t, 8.0, b.RegularHours, 1e-9)
		assert.InDelta(t, 25.0-(17.0+5.0/60), b.TotalHours, 1e-9)
		assert.Zero(t, b.OvertimeHours)
		assert.Equal(t, 0, b.DayIndex)
	})

	t.Run("early leave before midnight", func(t *testing.T) {
		b, ok := c.Classify(record(monday(17, 0), timePtr(monday(23, 30))), win, policy)
		require.True(t, ok)

		assert.InDelta(t, 6.5, b.RegularHours, 1e-9)
		assert.InDelta(t, 6.5, b.TotalHours, 1e-9)
	})
}

func TestSummarize(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	records := []attendance.Attendance{
		record(monday(8, 0), timePtr(monday(17, 0))),  // Monday: 8 regular
		record(monday(8, 10).AddDate(0, 0, 1), timePtr(monday(18, 0).AddDate(0, 0, 1))), // Tuesday: overtime
		record(monday(8, 0).AddDate(0, 0, 2), nil),    // Wednesday: still open, skipped
		record(sunday(8, 0), timePtr(sunday(17, 0))),  // Sunday: rest day
	}

	s := c.Summarize(records, dayWindow(), policy)

	// Tuesday: regular 8, overtime 1, total 17-8.1667-1+1 = 8.8333.
	assert.InDelta(t, 16.0, s.RegularHours, 1e-9)
	assert.InDelta(t, 1.0, s.OvertimeHours, 1e-9)
	assert.InDelta(t, 8.0, s.RdotHours, 1e-9)
	assert.InDelta(t, 8.0+8.8+8.0, s.TotalHours, 1e-9)

	assert.InDelta(t, 8.0, s.WeeklyHours[0], 1e-9)
	assert.InDelta(t, 8.8, s.WeeklyHours[1], 1e-9)
	assert.Zero(t, s.WeeklyHours[2])
	assert.InDelta(t, 8.0, s.WeeklyHours[6], 1e-9)
}

func TestSummarizeClampsNegativeContributions(t *testing.T) {
	c := NewClassifier(testLoc)
	policy := fixtures.DefaultPolicy()

	// Late clock-in with an almost immediate clock-out: the fixed deduction
	// exceeds the time present, which must not drive totals negative.
	records := []attendance.Attendance{
		record(monday(8, 20), timePtr(monday(8, 30))),
	}

	s := c.Summarize(records, dayWindow(), policy)

	assert.Zero(t, s.RegularHours)
	assert.InDelta(t, 0.2, s.TotalHours, 1e-9)
	assert.InDelta(t, 0.2, s.WeeklyHours[0], 1e-9)
}
