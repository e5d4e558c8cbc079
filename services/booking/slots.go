package booking

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"
	"glowbook/services/schedule"
	"glowbook/utils"
)

// generateStartTimes enumerates bookable start intervals for one provider
// and day. free = salon hours ∩ personal work window, minus busy; candidate
// starts walk each free sub-interval at stepMin granularity while the full
// duration still fits. When today is true, starts not strictly after nowMin
// are dropped.
func generateStartTimes(
	day models.DayConfig,
	salonHours []models.Interval,
	busy []models.Interval,
	durationMin, stepMin int,
	today bool,
	nowMin int,
) []models.Interval {
	if !day.Working() || durationMin <= 0 || stepMin <= 0 {
		return nil
	}

	work := []models.Interval{{Start: day.From, End: day.To}}
	free := schedule.Intersect(salonHours, work)
	free = schedule.Subtract(free, busy)

	var out []models.Interval
	for _, f := range free {
		for t := f.Start; t+durationMin <= f.End; t += stepMin {
			if today && t <= nowMin {
				continue
			}
			out = append(out, models.Interval{Start: t, End: t + durationMin})
		}
	}
	return out
}

func (e *DefaultEngine) ComputeSlots(ctx context.Context, providerID, date string, serviceIDs []string) (*SlotsResult, error) {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	cart, err := e.CatalogRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}
	duration := models.CartDuration(cart)

	if providerID == models.AnyProviderID {
		return e.searchAllProviders(ctx, date, day, cart, duration)
	}

	staff, err := e.StaffRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.Active {
		return &SlotsResult{Slots: []models.Slot{}, AvailabilityError: reasonUnknownProvider}, nil
	}
	if !canPerformCart(*staff, cart) {
		return &SlotsResult{Slots: []models.Slot{}, AvailabilityError: reasonNotCapable}, nil
	}

	slots, note, err := e.providerSlots(ctx, *staff, date, day, duration)
	if err != nil {
		return nil, err
	}
	result := &SlotsResult{Slots: slots}
	if len(slots) == 0 {
		result.Slots = []models.Slot{}
		result.AvailabilityError = note
	}
	return result, nil
}

// providerSlots computes one provider's slots for a day. The returned note
// explains an empty result for user messaging.
func (e *DefaultEngine) providerSlots(
	ctx context.Context,
	staff models.Staff,
	date string,
	day time.Time,
	durationMin int,
) ([]models.Slot, string, error) {
	salonHours := e.SalonHours.ForDate(day)
	if len(salonHours) == 0 {
		return nil, msgSalonClosed, nil
	}

	dayCfg, err := e.Resolver.ResolveDay(ctx, staff.ID, day)
	if err != nil {
		return nil, "", err
	}
	if dayCfg == nil || !dayCfg.Working() {
		return nil, msgNoScheduleForDay, nil
	}

	busy, err := e.busyIntervals(ctx, staff.ID, date)
	if err != nil {
		return nil, "", err
	}

	now := e.now()
	today := now.Format(models.DateLayout) == date
	starts := generateStartTimes(*dayCfg, salonHours, busy, durationMin, e.StepMin, today, utils.MinutesSinceMidnight(now))

	slots := make([]models.Slot, 0, len(starts))
	for _, iv := range starts {
		slots = append(slots, models.Slot{
			Start:      iv.Start,
			End:        iv.End,
			Date:       date,
			ProviderID: staff.ID,
		})
	}
	return slots, msgFullyBooked, nil
}
