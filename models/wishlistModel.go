package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Wishlist struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customer_id" json:"customerId"`
	MenuID     primitive.ObjectID `bson:"menu_id" json:"menuId"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// WishlistWithMenu is the denormalized read shape, with the menu and its
// owning restaurant inlined by the listing lookup.
type WishlistWithMenu struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Menu       Menu               `bson:"menu" json:"menu"`
	Restaurant Restaurant         `bson:"restaurant" json:"restaurant"`
}
