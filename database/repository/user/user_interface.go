package userRepo

import (
	"context"
	"time"

	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail returns nil, nil when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, email string, req models.UserUpsertRequest) (*models.UpdateResult, error)
	SetRole(ctx context.Context, email string, role models.Role) (*models.UpdateResult, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoUserRepo creates a user repository over the "user" collection of db.
func NewMongoUserRepo(db *mongo.Database, timeout time.Duration) *MongoUserRepo {
	return &MongoUserRepo{
		coll:    db.Collection(database.UsersCollection),
		timeout: timeout,
	}
}
