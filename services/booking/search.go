package booking

import (
	"context"
	"sort"
	"time"

	"glowbook/models"
)

// searchAllProviders is the "first available" mode: it fans the slot
// computation out over every capable staff member, tags each slot with its
// provider, and returns one merged list sorted by start time with provider
// id as the deterministic tie-break.
func (e *DefaultEngine) searchAllProviders(
	ctx context.Context,
	date string,
	day time.Time,
	cart []models.Service,
	durationMin int,
) (*SlotsResult, error) {
	staff, err := e.StaffRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var (
		merged     []models.Slot
		anyWorking bool
	)
	for _, s := range staff {
		if !canPerformCart(s, cart) {
			continue
		}
		slots, note, err := e.providerSlots(ctx, s, date, day, durationMin)
		if err != nil {
			return nil, err
		}
		// Track whether any capable staff member worked at all that day,
		// so an empty result can say "booked out" instead of "closed".
		if note != msgNoScheduleForDay && note != msgSalonClosed {
			anyWorking = true
		}
		merged = append(merged, slots...)
	}

	if len(merged) == 0 {
		msg := msgNoProviderSchedule
		if anyWorking {
			msg = msgFullyBooked
		}
		return &SlotsResult{Slots: []models.Slot{}, AvailabilityError: msg}, nil
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Start != merged[j].Start {
			return merged[i].Start < merged[j].Start
		}
		return merged[i].ProviderID < merged[j].ProviderID
	})
	return &SlotsResult{Slots: merged}, nil
}
