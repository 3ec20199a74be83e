package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Avatar       *string            `bson:"avatar" json:"avatar"`
	OpeningHour  string             `bson:"opening_hour" json:"openingHour"`
	ClosingHour  string             `bson:"closing_hour" json:"closingHour"`
	DaysOff      []string           `bson:"days_off" json:"daysOff"`
	Contact      *string            `bson:"contact" json:"contact"`
	Gallery      Gallery            `bson:"gallery" json:"gallery"`
	PaymentMode  string             `bson:"payment_mode" json:"paymentMode"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
