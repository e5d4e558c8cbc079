package models

// Slot is one bookable start time offered to the client. Start/End are
// minutes from midnight on Date; ProviderID is the staff member the slot
// was computed for.
type Slot struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Date       string `json:"date"`
	ProviderID string `json:"providerId"`
}
