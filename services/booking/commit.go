package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/utils"
)

// cartGroup is a run of cart services sharing a category, kept in the
// cart's first-appearance order. Groups exist only at commit time; each
// one becomes a separate booking record chained in time.
type cartGroup struct {
	categoryID string
	services   []models.Service
}

func groupByCategory(cart []models.Service) []cartGroup {
	var groups []cartGroup
	index := map[string]int{}
	for _, svc := range cart {
		i, ok := index[svc.CategoryID]
		if !ok {
			index[svc.CategoryID] = len(groups)
			groups = append(groups, cartGroup{categoryID: svc.CategoryID, services: []models.Service{svc}})
			continue
		}
		groups[i].services = append(groups[i].services, svc)
	}
	return groups
}

func (g cartGroup) duration() int {
	total := 0
	for _, svc := range g.services {
		total += svc.DurationMin
	}
	return total
}

func (g cartGroup) price() float64 {
	total := 0.0
	for _, svc := range g.services {
		total += svc.PriceRSD
	}
	return total
}

func (g cartGroup) serviceIDs() []string {
	ids := make([]string, 0, len(g.services))
	for _, svc := range g.services {
		ids = append(ids, svc.ID)
	}
	return ids
}

func reject(status models.CommitStatus, reason string) *models.CommitOutcome {
	return &models.CommitOutcome{Status: status, Reason: reason}
}

// CommitBooking is the single commit attempt state machine:
// Validating -> (CapabilityMismatch | OutOfWindow) | Checking ->
// (Conflict) | Writing -> Committed. No partial state is ever visible:
// either every cart group is written or none are.
func (e *DefaultEngine) CommitBooking(ctx context.Context, req models.CommitRequest) (*models.CommitOutcome, error) {
	logger := utils.GetLogger()

	day, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	cart, err := e.CatalogRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}

	providerID := req.ProviderID
	if providerID == models.AnyProviderID {
		providerID, err = e.pickProviderForStart(ctx, req.Date, day, cart, req.Start)
		if err != nil {
			return nil, err
		}
		if providerID == "" {
			return reject(models.CommitConflict, reasonIntervalTaken), nil
		}
	}

	// Capability re-check: search-time filtering should have prevented a
	// mismatch, but staff capabilities may have changed since.
	staff, err := e.StaffRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.Active {
		return reject(models.CommitCapabilityMismatch, reasonUnknownProvider), nil
	}
	if !canPerformCart(*staff, cart) {
		return reject(models.CommitCapabilityMismatch, reasonNotCapable), nil
	}

	// Time re-check against the booking horizon.
	now := e.now()
	startAt := time.Date(day.Year(), day.Month(), day.Day(), req.Start/60, req.Start%60, 0, 0, now.Location())
	if !startAt.After(now) {
		return reject(models.CommitOutOfWindow, reasonStartInPast), nil
	}
	if startAt.After(now.AddDate(0, 0, e.HorizonDays)) {
		return reject(models.CommitOutOfWindow, reasonBeyondHorizon), nil
	}

	// Lay the category groups out sequentially with no gaps.
	groups := groupByCategory(cart)
	drafts := make([]*models.Booking, 0, len(groups))
	cursor := req.Start
	for _, g := range groups {
		groupEnd := cursor + g.duration()
		drafts = append(drafts, &models.Booking{
			ProviderID: providerID,
			ClientID:   req.ClientID,
			Date:       req.Date,
			Start:      cursor,
			End:        groupEnd,
			ServiceIDs: g.serviceIDs(),
			CategoryID: g.categoryID,
			TotalPrice: g.price(),
		})
		cursor = groupEnd
	}

	// Conflict re-check as late as possible before writing. This narrows
	// but does not close the race window; the transactional group write
	// repeats the check and is the authority.
	for _, draft := range drafts {
		count, err := e.BookingRepo.CountOverlapping(ctx, providerID, req.Date, draft.Start, draft.End)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return reject(models.CommitConflict, reasonIntervalTaken), nil
		}
	}

	ids, err := e.BookingRepo.CreateGroup(ctx, drafts)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return reject(models.CommitConflict, reasonIntervalTaken), nil
		}
		return nil, err
	}

	logger.Info("booking committed",
		zap.String("providerID", providerID),
		zap.String("clientID", req.ClientID),
		zap.String("date", req.Date),
		zap.Int("start", req.Start),
		zap.Int("end", cursor),
		zap.Int("groups", len(ids)))

	if e.Notification != nil {
		if err := e.Notification.NotifyBookingConfirmed(ctx, req.ClientID, providerID, req.Date, req.Start, cursor, ids); err != nil {
			logger.Warn("booking confirmation push failed", zap.Error(err))
		}
	}

	return &models.CommitOutcome{
		Status:     models.CommitCommitted,
		BookingIDs: ids,
		FinalEnd:   cursor,
	}, nil
}

// pickProviderForStart resolves the virtual "no preference" provider at
// commit time: the first capable staff member (by id) with the requested
// start still available wins. Returns "" when nobody can take it.
func (e *DefaultEngine) pickProviderForStart(
	ctx context.Context,
	date string,
	day time.Time,
	cart []models.Service,
	start int,
) (string, error) {
	result, err := e.searchAllProviders(ctx, date, day, cart, models.CartDuration(cart))
	if err != nil {
		return "", err
	}
	for _, slot := range result.Slots {
		if slot.Start == start {
			return slot.ProviderID, nil
		}
	}
	return "", nil
}

func (e *DefaultEngine) CancelBooking(ctx context.Context, bookingID string) error {
	if err := e.BookingRepo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return nil
}

// RescheduleBooking moves one booking to a new slot. The original is
// released first so the conflict check does not collide with itself; if the
// new slot is rejected the original is restored.
func (e *DefaultEngine) RescheduleBooking(ctx context.Context, bookingID, date string, start int) (*models.CommitOutcome, error) {
	original, err := e.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if original == nil || original.Status != models.BookingStatusConfirmed {
		return nil, fmt.Errorf("booking %s not found or not active", bookingID)
	}

	if err := e.BookingRepo.Cancel(ctx, bookingID); err != nil {
		return nil, err
	}

	outcome, err := e.CommitBooking(ctx, models.CommitRequest{
		ProviderID: original.ProviderID,
		Date:       date,
		Start:      start,
		ServiceIDs: original.ServiceIDs,
		ClientID:   original.ClientID,
	})
	if err != nil || outcome.Status != models.CommitCommitted {
		restore := *original
		restore.ID = ""
		restore.CreatedAt = time.Time{}
		if _, restoreErr := e.BookingRepo.CreateGroup(ctx, []*models.Booking{&restore}); restoreErr != nil {
			utils.GetLogger().Error("failed to restore booking after rejected reschedule",
				zap.String("bookingID", bookingID), zap.Error(restoreErr))
		}
	}
	return outcome, err
}
