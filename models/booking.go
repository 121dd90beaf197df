package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a patient's reservation of one slot of one service on one date.
// At most one booking exists per (Treatment, Date, Patient).
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment"`                     // service name
	Date        string             `bson:"date" json:"date"`                               // calendar date as sent by the client, e.g. "Jan 1, 2024"
	Slot        string             `bson:"slot" json:"slot"`                               // slot label from the service template
	Patient     string             `bson:"patient" json:"patient"`                         // patient email
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// BookingRequest is the body of POST /bookingInfo.
type BookingRequest struct {
	Treatment   string  `json:"treatment" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Slot        string  `json:"slot" binding:"required"`
	Patient     string  `json:"patient" binding:"required,email"`
	PatientName string  `json:"patientName"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price"`
}

func (r BookingRequest) ToBooking() Booking {
	return Booking{
		Treatment:   r.Treatment,
		Date:        r.Date,
		Slot:        r.Slot,
		Patient:     r.Patient,
		PatientName: r.PatientName,
		Phone:       r.Phone,
		Price:       r.Price,
	}
}

// BookingKey returns the uniqueness key of a booking.
func (b Booking) BookingKey() string {
	return b.Treatment + "|" + b.Date + "|" + b.Patient
}

// BookingResponse is the body returned by POST /bookingInfo. Exactly one of Result and
// BookingInfo is set.
type BookingResponse struct {
	Success     bool          `json:"success"`
	Result      *InsertResult `json:"result,omitempty"`
	BookingInfo *Booking      `json:"bookingInfo,omitempty"`
}
