package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
)

// DefaultPolicy is the attendance policy seeded for every new employer. An
// 08:00-17:00 day shift with a 15-minute grace period, Sunday rest day, and
// the standard PH overtime premiums.
func DefaultPolicy() employer.Policy {
	return employer.Policy{
		WorkStartTime:              "08:00",
		WorkEndTime:                "17:00",
		GracePeriodInMinutes:       15,
		LateDeducInMinutes:         60,
		MinutesThresholdAfterLate:  60,
		OvertimeThresholdInMinutes: 30,
		OvertimeRate:               decimal.NewFromFloat(1.25),
		RdotRate:                   decimal.NewFromFloat(1.3),
		RestDay:                    6,
	}
}
