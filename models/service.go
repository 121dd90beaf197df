package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment type with its template of slot labels, e.g. "08.00 AM - 08.30 AM".
// Slots are not dated; they become booked only together with a date.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}
