package staffRepo

import (
	"context"

	"glowbook/models"
)

// Repository is the data-access contract for staff members.
type Repository interface {
	GetByID(ctx context.Context, staffID string) (*models.Staff, error)
	// ListActive returns staff eligible for booking, sorted by id for
	// deterministic iteration order.
	ListActive(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	UpdateCapabilities(ctx context.Context, staffID string, caps models.Capabilities) error
	SetActive(ctx context.Context, staffID string, active bool) error
}
