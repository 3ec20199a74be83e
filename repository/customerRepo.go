package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type CustomerRepo struct {
	collection *mongo.Collection
}

func NewCustomerRepo(collection *mongo.Collection) *CustomerRepo {
	return &CustomerRepo{collection: collection}
}

func (r *CustomerRepo) FindByID(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.collection.FindOne(ctx, bson.M{"_id": customerID}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepo) Insert(ctx context.Context, customer *models.Customer) (primitive.ObjectID, error) {
	customer.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return primitive.NilObjectID, err
	}
	return customer.ID, nil
}
