package staff

import (
	"context"

	"glowbook/models"
)

// Service covers staff management and shift scheduling actions.
type Service interface {
	ListStaff(ctx context.Context) ([]models.Staff, error)
	CreateStaff(ctx context.Context, member *models.Staff) error
	UpdateCapabilities(ctx context.Context, staffID string, caps models.Capabilities) error

	// SetupShifts replaces the provider's shift configuration wholesale;
	// the new configuration becomes the latest and therefore authoritative.
	SetupShifts(ctx context.Context, providerID string, req models.SetupShiftsRequest) (*models.ShiftConfiguration, error)
	// SetOverride appends a single-day override onto the current
	// configuration without touching the weekly pattern.
	SetOverride(ctx context.Context, providerID string, req models.SetOverrideRequest) error
	GetConfiguration(ctx context.Context, providerID string) (*models.ShiftConfiguration, error)
}
