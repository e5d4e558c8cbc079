package booking

import (
	"context"
	"fmt"

	"glowbook/models"
)

// busyIntervals expresses a provider's committed bookings for a date as
// minute-offset busy intervals. No bookings is an empty set, not a failure.
func (e *DefaultEngine) busyIntervals(ctx context.Context, providerID, date string) ([]models.Interval, error) {
	bookings, err := e.BookingRepo.ListForDay(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", providerID, date, err)
	}
	intervals := make([]models.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, b.Interval())
	}
	return intervals, nil
}
