package serviceRepo

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

// ServiceRepository reads the treatment catalogue.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) *MongoServiceRepo {
	return &MongoServiceRepo{
		coll:    db.Collection(database.ServicesCollection),
		timeout: timeout,
	}
}

func (r *MongoServiceRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

// GetAll returns the catalogue in insertion order.
func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, database.WrapErr("find services", err)
	}
	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, database.WrapErr("decode services", err)
	}
	return services, nil
}

// UpsertMany replaces each service by name, inserting the ones that do not exist yet.
func (r *MongoServiceRepo) UpsertMany(ctx context.Context, services []models.Service) (*models.UpdateResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(services))
	for _, svc := range services {
		replacement := bson.M{"name": svc.Name, "slots": svc.Slots}
		if svc.Price > 0 {
			replacement["price"] = svc.Price
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"name": svc.Name}).
			SetReplacement(replacement).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return &models.UpdateResult{Acknowledged: true}, nil
	}

	res, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return nil, database.WrapErr("upsert services", err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}
