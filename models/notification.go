package models

// ReminderPayload is the asynq task payload for appointment reminder pushes.
type ReminderPayload struct {
	Target    string `json:"target"` // "client" or "staff"
	ID        string `json:"id"`
	BookingID string `json:"bookingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
