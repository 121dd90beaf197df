package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the booking indexes. The compound unique index is what makes
// "one booking per treatment, date and patient" hold across concurrent writers.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patient", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("treatment_date_patient_unique"),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}},
			Options: options.Index().SetName("patient_idx"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "treatment", Value: 1}},
			Options: options.Index().SetName("date_treatment_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
