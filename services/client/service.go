package client

import (
	"context"
	"fmt"

	bookingRepo "glowbook/database/repository/booking"
	clientRepo "glowbook/database/repository/client"
	"glowbook/models"
)

// Service is the thin client-profile layer: CRUD glue plus a booking
// history view for the front desk.
type Service interface {
	GetClient(ctx context.Context, clientID string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, clientID string) error
	BookingHistory(ctx context.Context, clientID string, limit int) ([]models.Booking, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Clients  clientRepo.Repository
	Bookings bookingRepo.Repository
}

func (s *DefaultService) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	return s.Clients.GetByID(ctx, clientID)
}

func (s *DefaultService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.Clients.List(ctx)
}

func (s *DefaultService) CreateClient(ctx context.Context, c *models.Client) error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	return s.Clients.Create(ctx, c)
}

func (s *DefaultService) UpdateClient(ctx context.Context, c *models.Client) error {
	return s.Clients.Update(ctx, c)
}

func (s *DefaultService) DeleteClient(ctx context.Context, clientID string) error {
	return s.Clients.Delete(ctx, clientID)
}

func (s *DefaultService) BookingHistory(ctx context.Context, clientID string, limit int) ([]models.Booking, error) {
	return s.Bookings.ListForClient(ctx, clientID, limit)
}
