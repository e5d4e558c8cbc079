package shiftRepo

import (
	"context"

	"glowbook/models"
)

// Repository is the data-access contract for shift configurations.
// Configurations are append-only; GetLatest returns the authoritative one.
type Repository interface {
	// GetLatest returns the most recently created configuration for the
	// provider, or nil when the provider has none at all.
	GetLatest(ctx context.Context, providerID string) (*models.ShiftConfiguration, error)
	// Replace appends a new configuration; it becomes the latest.
	Replace(ctx context.Context, cfg *models.ShiftConfiguration) error
	// SetOverride writes a single-day override onto the latest
	// configuration without touching the weekly pattern.
	SetOverride(ctx context.Context, providerID, dateKey string, cfg models.DayConfig) error
}
