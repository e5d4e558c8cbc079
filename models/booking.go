package models

import "time"

// Booking statuses. Cancelled bookings no longer occupy their interval.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents one committed appointment record. A multi-category
// cart produces several bookings chained in time, one per category group.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	Date       string    `bson:"date" json:"date"` // "2006-01-02"
	Start      int       `bson:"start" json:"start"` // minutes from midnight
	End        int       `bson:"end" json:"end"`
	ServiceIDs []string  `bson:"serviceIds" json:"serviceIds"`
	CategoryID string    `bson:"categoryId" json:"categoryId"`
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Interval returns the booking's occupied window as a minute-offset interval.
func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// CommitRequest is the payload for committing a chosen slot.
type CommitRequest struct {
	ProviderID string   `json:"providerId" binding:"required"` // concrete id or AnyProviderID
	Date       string   `json:"date" binding:"required"`
	Start      int      `json:"start"`
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1"`
	ClientID   string   `json:"clientId" binding:"required"`
}

// CommitStatus tags the outcome of a single commit attempt. Every attempt
// terminates in exactly one of these; callers decide whether to re-search.
type CommitStatus string

const (
	CommitCommitted          CommitStatus = "committed"
	CommitConflict           CommitStatus = "conflict"
	CommitCapabilityMismatch CommitStatus = "capability_mismatch"
	CommitOutOfWindow        CommitStatus = "out_of_window"
)

// CommitOutcome is the tagged result of a commit attempt. BookingIDs and
// FinalEnd are populated only when Status is CommitCommitted.
type CommitOutcome struct {
	Status     CommitStatus `json:"status"`
	Reason     string       `json:"reason,omitempty"`
	BookingIDs []string     `json:"bookingIds,omitempty"`
	FinalEnd   int          `json:"finalEnd,omitempty"`
}
