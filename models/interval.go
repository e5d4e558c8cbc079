package models

// Interval is a half-open time range [Start, End) expressed in minutes
// from midnight (e.g. 540 for 9:00 AM).
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Empty reports whether the interval contains no minutes.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// Overlaps reports whether two half-open intervals share at least one minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}
