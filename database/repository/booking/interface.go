package bookingRepo

import (
	"context"

	"glowbook/models"
)

// Repository is the data-access contract for booking records.
type Repository interface {
	EnsureIndexes() error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// ListForDay returns the provider's active bookings whose start falls
	// on the given date. Returns an empty slice, not an error, when none exist.
	ListForDay(ctx context.Context, providerID, date string) ([]models.Booking, error)
	ListForClient(ctx context.Context, clientID string, limit int) ([]models.Booking, error)
	// CountOverlapping counts the provider's active bookings overlapping
	// [start, end) on the given date.
	CountOverlapping(ctx context.Context, providerID, date string, start, end int) (int, error)
	// CreateGroup writes a chain of bookings as one unit. Inside the
	// transaction each booking's interval is re-checked against committed
	// records; any overlap aborts the whole group with ErrOverlap.
	CreateGroup(ctx context.Context, bookings []*models.Booking) ([]string, error)
	// Cancel marks a booking cancelled so it no longer occupies its interval.
	Cancel(ctx context.Context, bookingID string) error
}
