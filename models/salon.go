package models

import "time"

// SalonHours maps weekdays to the salon's operating ranges. It is a global
// ceiling independent of any staff member's personal schedule; ranges for
// one weekday are disjoint and never cross midnight.
type SalonHours map[time.Weekday][]Interval

// ForDate returns the operating ranges for the date's weekday. A weekday
// with no entry means the salon is closed.
func (h SalonHours) ForDate(date time.Time) []Interval {
	return h[date.Weekday()]
}
