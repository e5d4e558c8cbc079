package clientRepo

import (
	"context"

	"glowbook/models"
)

// Repository is the data-access contract for client profiles.
type Repository interface {
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, clientID string) error
}
