package booking

import (
	"context"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	staffRepo "glowbook/database/repository/staff"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/services/schedule"
)

// Engine is the appointment availability and commit surface exposed to the
// UI and notification layers.
type Engine interface {
	// ResolveDay returns a provider's effective working window for a date,
	// or nil when the provider has no shift configuration. Calendar views
	// use it to grey out non-working days.
	ResolveDay(ctx context.Context, providerID string, date time.Time) (*models.DayConfig, error)
	// ComputeSlots lists bookable start times for a cart of service ids on
	// a date, for one provider or models.AnyProviderID ("first available").
	ComputeSlots(ctx context.Context, providerID, date string, serviceIDs []string) (*SlotsResult, error)
	// CommitBooking re-validates and persists a chosen slot. The outcome is
	// tagged; error is reserved for infrastructure failures.
	CommitBooking(ctx context.Context, req models.CommitRequest) (*models.CommitOutcome, error)
	// CancelBooking releases a booking's interval.
	CancelBooking(ctx context.Context, bookingID string) error
	// RescheduleBooking moves a booking to a new slot through the same
	// conflict-checked commit path, cancelling the original on success.
	RescheduleBooking(ctx context.Context, bookingID string, date string, start int) (*models.CommitOutcome, error)
}

// SlotsResult carries the computed slots plus the user-messaging hint that
// distinguishes "nobody works that day" from "staff work but are booked out".
type SlotsResult struct {
	Slots             []models.Slot `json:"slots"`
	AvailabilityError string        `json:"availabilityError,omitempty"`
}

// DefaultEngine is the production implementation.
type DefaultEngine struct {
	Resolver     *schedule.Resolver
	BookingRepo  bookingRepo.Repository
	StaffRepo    staffRepo.Repository
	CatalogRepo  catalogRepo.Repository
	Notification notification.Service

	SalonHours  models.SalonHours
	StepMin     int
	HorizonDays int

	// Now is the clock used for the "today" filter and horizon check;
	// injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultEngine) ResolveDay(ctx context.Context, providerID string, date time.Time) (*models.DayConfig, error) {
	return e.Resolver.ResolveDay(ctx, providerID, date)
}
