package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
)

// CallerIdentity is the already-authenticated principal attached to a request
// by the auth middleware. Read paths may run without one.
type CallerIdentity struct {
	ID   primitive.ObjectID
	Role string
}
