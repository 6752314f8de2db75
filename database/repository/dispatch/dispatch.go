package dispatchRepo

import (
	"context"

	"darshanam/database"
	"darshanam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DispatchRecordRepository stores confirmation send attempts for support
// diagnosis.
type DispatchRecordRepository interface {
	Create(ctx context.Context, record models.DispatchRecord) (string, error)
	MarkResult(ctx context.Context, id, status, providerID, errMsg string) error
	GetByBookingID(ctx context.Context, bookingID string) ([]models.DispatchRecord, error)
}

type mongoDispatchRepo struct {
	coll *mongo.Collection
}

// NewMongoDispatchRepo returns a DispatchRecordRepository backed by MongoDB.
func NewMongoDispatchRepo() DispatchRecordRepository {
	db := database.MongoClient.Database("darshanam")
	return &mongoDispatchRepo{
		coll: db.Collection("dispatch_records"),
	}
}
