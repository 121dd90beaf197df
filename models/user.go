package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleNone  Role = "none"
	RoleAdmin Role = "admin"
)

// ParseRole maps anything other than "admin" to RoleNone.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleNone
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// UnmarshalBSONValue normalizes legacy or unknown role values stored in the user collection.
func (r *Role) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.String {
		*r = RoleNone
		return nil
	}
	s, _, ok := bsoncore.ReadString(data)
	if !ok {
		*r = RoleNone
		return nil
	}
	*r = ParseRole(s)
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ParseRole(string(r))))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = RoleNone
		return nil
	}
	*r = ParseRole(s)
	return nil
}

// User is keyed by email. Role only changes through an admin grant.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserUpsertRequest is the body of PUT /user/:email. The path email wins over the body.
type UserUpsertRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserUpsertResponse carries the write result and a freshly issued identity token.
type UserUpsertResponse struct {
	Result *UpdateResult `json:"result"`
	Token  string        `json:"token"`
}
