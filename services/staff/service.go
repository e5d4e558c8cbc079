package staff

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	shiftRepo "glowbook/database/repository/shift"
	staffRepo "glowbook/database/repository/staff"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/services/schedule"
	"glowbook/utils"
)

// DefaultService is the production implementation.
type DefaultService struct {
	Staff        staffRepo.Repository
	Shifts       shiftRepo.Repository
	Resolver     *schedule.Resolver
	Notification notification.Service
}

func (s *DefaultService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.Staff.ListActive(ctx)
}

func (s *DefaultService) CreateStaff(ctx context.Context, member *models.Staff) error {
	member.Active = true
	return s.Staff.Create(ctx, member)
}

func (s *DefaultService) UpdateCapabilities(ctx context.Context, staffID string, caps models.Capabilities) error {
	return s.Staff.UpdateCapabilities(ctx, staffID, caps)
}

func (s *DefaultService) SetupShifts(ctx context.Context, providerID string, req models.SetupShiftsRequest) (*models.ShiftConfiguration, error) {
	if err := validateSetup(req); err != nil {
		return nil, err
	}

	cfg := &models.ShiftConfiguration{
		ProviderID:    providerID,
		PatternLength: req.PatternLength,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Weeks:         req.Weeks,
		CreatedAt:     time.Now(),
	}
	if err := s.Shifts.Replace(ctx, cfg); err != nil {
		return nil, err
	}
	s.Resolver.Invalidate(ctx, providerID)

	if s.Notification != nil {
		summary := fmt.Sprintf("Your shift pattern was updated starting %s", req.StartDate)
		if err := s.Notification.NotifyScheduleUpdate(ctx, providerID, summary); err != nil {
			utils.GetLogger().Warn("schedule update push failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}
	return cfg, nil
}

func (s *DefaultService) SetOverride(ctx context.Context, providerID string, req models.SetOverrideRequest) error {
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return fmt.Errorf("invalid override date %q: %w", req.Date, err)
	}
	if err := s.Shifts.SetOverride(ctx, providerID, req.Date, req.Config); err != nil {
		return err
	}
	s.Resolver.Invalidate(ctx, providerID)

	if s.Notification != nil {
		summary := fmt.Sprintf("Your schedule for %s was changed", req.Date)
		if err := s.Notification.NotifyScheduleUpdate(ctx, providerID, summary); err != nil {
			utils.GetLogger().Warn("schedule update push failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultService) GetConfiguration(ctx context.Context, providerID string) (*models.ShiftConfiguration, error) {
	return s.Shifts.GetLatest(ctx, providerID)
}

func validateSetup(req models.SetupShiftsRequest) error {
	if req.PatternLength < 1 || req.PatternLength > 4 {
		return fmt.Errorf("pattern length must be between 1 and 4 weeks")
	}
	if len(req.Weeks) != req.PatternLength {
		return fmt.Errorf("expected %d weeks, got %d", req.PatternLength, len(req.Weeks))
	}
	for i, week := range req.Weeks {
		if len(week) != 7 {
			return fmt.Errorf("week %d must have 7 days, got %d", i, len(week))
		}
	}
	if _, err := time.Parse(models.DateLayout, req.StartDate); err != nil {
		return fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
	}
	if req.EndDate != nil {
		if _, err := time.Parse(models.DateLayout, *req.EndDate); err != nil {
			return fmt.Errorf("invalid end date %q: %w", *req.EndDate, err)
		}
	}
	return nil
}
