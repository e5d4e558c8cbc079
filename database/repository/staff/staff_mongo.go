package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowbook/database"
	"glowbook/models"
)

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo builds a Repository backed by the staff collection.
func NewMongoStaffRepo() Repository {
	return &mongoStaffRepo{coll: database.Collection("staff")}
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, staffID string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": staffID}).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) ListActive(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (r *mongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *mongoStaffRepo) UpdateCapabilities(ctx context.Context, staffID string, caps models.Capabilities) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"capabilities": caps}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": staffID}, update)
	if err != nil {
		return fmt.Errorf("failed to update capabilities: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStaffRepo) SetActive(ctx context.Context, staffID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": staffID}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("failed to update staff active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
