package shiftRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowbook/database"
	"glowbook/models"
)

// ErrNoConfiguration is returned by SetOverride when the provider has no
// configuration to attach the override to.
var ErrNoConfiguration = errors.New("provider has no shift configuration")

type mongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo builds a Repository backed by the shift_configurations collection.
func NewMongoShiftRepo() Repository {
	return &mongoShiftRepo{coll: database.Collection("shift_configurations")}
}

func (r *mongoShiftRepo) GetLatest(ctx context.Context, providerID string) (*models.ShiftConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var cfg models.ShiftConfiguration
	err := r.coll.FindOne(ctx, bson.M{"providerId": providerID}, opts).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift configuration: %w", err)
	}
	return &cfg, nil
}

func (r *mongoShiftRepo) Replace(ctx context.Context, cfg *models.ShiftConfiguration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, cfg); err != nil {
		return fmt.Errorf("failed to insert shift configuration: %w", err)
	}
	return nil
}

func (r *mongoShiftRepo) SetOverride(ctx context.Context, providerID, dateKey string, cfg models.DayConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	latest, err := r.GetLatest(ctx, providerID)
	if err != nil {
		return err
	}
	if latest == nil {
		return ErrNoConfiguration
	}

	update := bson.M{"$set": bson.M{"overrides." + dateKey: cfg}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": latest.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to set shift override: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoConfiguration
	}
	return nil
}
