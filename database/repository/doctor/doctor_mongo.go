package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DoctorRepository defines the interface for doctor data access.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
}

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoDoctorRepo(db *mongo.Database, timeout time.Duration) *MongoDoctorRepo {
	return &MongoDoctorRepo{
		coll:    db.Collection(database.DoctorsCollection),
		timeout: timeout,
	}
}

// EnsureIndexes makes email the doctor's unique key.
func (r *MongoDoctorRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create doctor indexes: %w", err)
	}
	return nil
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, database.WrapErr("find doctors", err)
	}
	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, database.WrapErr("decode doctors", err)
	}
	return doctors, nil
}

// Create inserts a doctor. A second doctor with the same email fails with utils.ErrConflict.
func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (*models.InsertResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	if doctor.CreatedAt.IsZero() {
		doctor.CreatedAt = time.Now()
	}
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return nil, database.WrapErr("insert doctor "+doctor.Email, err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// DeleteByEmail removes the doctor with email. Deleting an unknown doctor is not an error.
func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, database.WrapErr("delete doctor "+email, err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
