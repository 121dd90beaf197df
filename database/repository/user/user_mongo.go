package userRepo

import (
	"context"
	"errors"
	"time"

	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll retrieves every user document.
func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, database.WrapErr("find users", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, database.WrapErr("decode user", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, database.WrapErr("iterate users", err)
	}
	return users, nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, database.WrapErr("find user "+email, err)
	}
	return &user, nil
}

// Upsert creates or updates the user keyed by email. New users start with RoleNone and the
// role is never taken from the request.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, req models.UserUpsertRequest) (*models.UpdateResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	set := bson.M{"email": email, "updatedAt": now}
	if req.Name != "" {
		set["name"] = req.Name
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"role": models.RoleNone, "createdAt": now},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, database.WrapErr("upsert user "+email, err)
	}
	return toUpdateResult(res), nil
}

// SetRole sets the role of an existing user. MatchedCount is 0 when no such user exists.
func (r *MongoUserRepo) SetRole(ctx context.Context, email string, role models.Role) (*models.UpdateResult, error) {
	ctx, cancel := database.OpContext(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, database.WrapErr("set role for "+email, err)
	}
	return toUpdateResult(res), nil
}

func toUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
