package models

import "time"

// DayConfig describes a staff member's working window for a single day.
// From/To are minutes from midnight; a closed day ignores both.
type DayConfig struct {
	From   int  `bson:"from" json:"from"`
	To     int  `bson:"to" json:"to"`
	Closed bool `bson:"closed" json:"closed"`
}

// Working reports whether the day config yields a usable open window.
// A config with From >= To while not closed is treated as not working
// rather than surfaced as an error.
func (dc DayConfig) Working() bool {
	return !dc.Closed && dc.From < dc.To
}

// ShiftConfiguration is a staff member's recurring shift pattern plus
// per-date overrides. Multiple configurations may exist for one provider;
// the one with the latest CreatedAt is authoritative.
type ShiftConfiguration struct {
	ID            string               `bson:"id" json:"id"`
	ProviderID    string               `bson:"providerId" json:"providerId"`
	PatternLength int                  `bson:"patternLength" json:"patternLength"` // rotation period in weeks, 1..4
	StartDate     string               `bson:"startDate" json:"startDate"`         // "2006-01-02", validity window start (inclusive)
	EndDate       *string              `bson:"endDate,omitempty" json:"endDate,omitempty"` // nil = open-ended
	Weeks         [][]DayConfig        `bson:"weeks" json:"weeks"`                 // PatternLength weeks of 7 days, Monday first
	Overrides     map[string]DayConfig `bson:"overrides,omitempty" json:"overrides,omitempty"` // date key -> config, wins over the pattern
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// DateLayout is the calendar-date key format used across shift
// configurations and bookings.
const DateLayout = "2006-01-02"

// SetOverrideRequest is the payload for adding a single-day override onto
// the provider's current shift configuration.
type SetOverrideRequest struct {
	Date   string    `json:"date" binding:"required"`
	Config DayConfig `json:"config"`
}

// SetupShiftsRequest defines the payload for replacing a provider's shift
// configuration wholesale.
type SetupShiftsRequest struct {
	PatternLength int           `json:"patternLength" binding:"required,min=1,max=4"`
	StartDate     string        `json:"startDate" binding:"required"`
	EndDate       *string       `json:"endDate,omitempty"`
	Weeks         [][]DayConfig `json:"weeks" binding:"required"`
}
