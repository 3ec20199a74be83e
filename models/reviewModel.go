package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID                  primitive.ObjectID `bson:"customer_id" json:"customerId"`
	RestaurantID                primitive.ObjectID `bson:"restaurant_id" json:"restaurantId"`
	Description                 string             `bson:"description" json:"description"`
	Rating                      int                `bson:"rating" json:"rating"`
	HasCustomerBeenShoppingHere bool               `bson:"has_customer_been_shopping_here" json:"hasCustomerBeenShoppingHere"`
	IsReplied                   bool               `bson:"is_replied" json:"isReplied"`
	CreatedAt                   time.Time          `bson:"created_at" json:"createdAt"`
}

// ReviewWithCustomer is the shape produced by the review listing lookup,
// with the author document inlined.
type ReviewWithCustomer struct {
	Review   `bson:",inline"`
	Customer Customer `bson:"customer" json:"customer"`
}
