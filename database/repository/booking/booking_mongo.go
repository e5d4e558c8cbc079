package bookingRepo

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

// ErrOverlap is returned by CreateGroup when a booking in the group would
// overlap an already committed booking for the same provider.
var ErrOverlap = errors.New("booking interval overlaps an existing booking")

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo builds a Repository backed by the bookings collection.
func NewMongoBookingRepo() Repository {
	return &mongoBookingRepo{coll: database.Collection("bookings")}
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) ListForDay(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     models.BookingStatusConfirmed,
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListForClient(ctx context.Context, clientID string, limit int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list client bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode client bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) CountOverlapping(ctx context.Context, providerID, date string, start, end int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.countOverlapping(ctx, providerID, date, start, end)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// countOverlapping runs the overlap query on whatever context it is given,
// so it can participate in a session transaction.
func (r *mongoBookingRepo) countOverlapping(ctx context.Context, providerID, date string, start, end int) (int, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     models.BookingStatusConfirmed,
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("overlap query failed: %w", err)
	}
	return int(count), nil
}

func (r *mongoBookingRepo) CreateGroup(ctx context.Context, bookings []*models.Booking) ([]string, error) {
	if len(bookings) == 0 {
		return nil, errors.New("empty booking group")
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		b.Status = models.BookingStatusConfirmed
		ids = append(ids, b.ID)
	}

	txnFn := func(sc mongo.SessionContext) error {
		for _, b := range bookings {
			// Last-moment overlap check on the same session: either every
			// booking in the group lands, or none do.
			count, err := r.countOverlapping(sc, b.ProviderID, b.Date, b.Start, b.End)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrOverlap
			}
			if _, err := r.coll.InsertOne(sc, b); err != nil {
				return fmt.Errorf("insert booking failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrOverlap) {
			return nil, ErrOverlap
		}
		return nil, fmt.Errorf("booking group transaction failed: %w", err)
	}

	return ids, nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
