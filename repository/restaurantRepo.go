package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type RestaurantRepo struct {
	collection *mongo.Collection
}

func NewRestaurantRepo(collection *mongo.Collection) *RestaurantRepo {
	return &RestaurantRepo{collection: collection}
}

func (r *RestaurantRepo) FindByID(ctx context.Context, restaurantID primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.collection.FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepo) FindByUsername(ctx context.Context, username string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepo) FindByEmail(ctx context.Context, email string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepo) Insert(ctx context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error) {
	restaurant.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, restaurant); err != nil {
		return primitive.NilObjectID, err
	}
	return restaurant.ID, nil
}
