package employer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employer is the employing organization account. Its Policy drives the
// hours classification for every employee it owns.
type Employer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CompanyName  string
	Address      string
	Contact      string
	Policy       Policy
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Policy holds the attendance parameters applied per record.
//
// WorkStartTime/WorkEndTime are "HH:MM" time-of-day strings; WorkEndTime may
// be numerically before WorkStartTime, which means the shift crosses
// midnight and consumers must wrap the end to the next day.
type Policy struct {
	WorkStartTime              string
	WorkEndTime                string
	GracePeriodInMinutes       int
	LateDeducInMinutes         int
	MinutesThresholdAfterLate  int
	OvertimeThresholdInMinutes int
	OvertimeRate               decimal.Decimal
	RdotRate                   decimal.Decimal
	// RestDay is the designated rest day, Monday=0 .. Sunday=6. Hours worked
	// on this day are routed to rest-day overtime.
	RestDay int
}
