package notification

import "context"

// Service defines push-notification delivery as seen by the rest of the
// platform. Delivery mechanics (FCM, reminder queue) stay behind this
// interface so the booking engine is testable without them.
type Service interface {
	SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error
	SendStaffPush(ctx context.Context, staffID, title, body string, data map[string]string) error
	// NotifyBookingConfirmed pushes the confirmation to the client and
	// schedules a reminder a configured lead time before the appointment.
	NotifyBookingConfirmed(ctx context.Context, clientID, staffID, date string, start, end int, bookingIDs []string) error
	// NotifyScheduleUpdate tells a staff member their shift configuration changed.
	NotifyScheduleUpdate(ctx context.Context, staffID, summary string) error
}
