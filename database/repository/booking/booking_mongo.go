package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, database.WrapErr("find booking", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, database.WrapErr("insert booking", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoBookingRepo) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return r.find(ctx, "find bookings of "+patient, bson.M{"patient": patient})
}

func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, "find bookings on "+date, bson.M{"date": date})
}

func (r *MongoBookingRepo) find(ctx context.Context, op string, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, database.WrapErr(op, err)
	}
	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, database.WrapErr(op, err)
	}
	return bookings, nil
}
