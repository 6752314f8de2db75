package dispatchRepo

import (
	"context"
	"time"

	"darshanam/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new dispatch record and returns its ID.
func (r *mongoDispatchRepo) Create(ctx context.Context, record models.DispatchRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	if record.Status == "" {
		record.Status = "pending"
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// MarkResult records the terminal outcome of a send attempt.
func (r *mongoDispatchRepo) MarkResult(ctx context.Context, id, status, providerID, errMsg string) error {
	update := bson.M{"$set": bson.M{
		"status":      status,
		"providerId":  providerID,
		"error":       errMsg,
		"completedAt": time.Now(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}

// GetByBookingID fetches all send attempts for one booking, newest first.
func (r *mongoDispatchRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.DispatchRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.DispatchRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
