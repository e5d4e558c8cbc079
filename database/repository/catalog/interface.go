package catalogRepo

import (
	"context"

	"glowbook/models"
)

// Repository is the read-only data-access contract for the service catalog.
type Repository interface {
	List(ctx context.Context) ([]models.Service, error)
	// GetByIDs resolves service ids to catalog entries, preserving the
	// order of the input ids (cart order matters for commit grouping).
	// An unknown id yields an error rather than a silent omission.
	GetByIDs(ctx context.Context, ids []string) ([]models.Service, error)
}
