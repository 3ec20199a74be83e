package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Etalase is a restaurant-owned grouping bucket for menus.
type Etalase struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurantId"`
	Name         string             `bson:"name" json:"name"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
