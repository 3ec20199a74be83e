package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type EtalaseRepo struct {
	collection *mongo.Collection
}

func NewEtalaseRepo(collection *mongo.Collection) *EtalaseRepo {
	return &EtalaseRepo{collection: collection}
}

func (r *EtalaseRepo) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Etalase, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, err
	}

	var etalases []models.Etalase
	if err := cursor.All(ctx, &etalases); err != nil {
		return nil, err
	}
	return etalases, nil
}

func (r *EtalaseRepo) FindByID(ctx context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error) {
	var etalase models.Etalase
	err := r.collection.FindOne(ctx, bson.M{"_id": etalaseID, "restaurant_id": restaurantID}).Decode(&etalase)
	if err != nil {
		return nil, err
	}
	return &etalase, nil
}

func (r *EtalaseRepo) Insert(ctx context.Context, etalase *models.Etalase) (primitive.ObjectID, error) {
	etalase.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, etalase); err != nil {
		return primitive.NilObjectID, err
	}
	return etalase.ID, nil
}

func (r *EtalaseRepo) UpdateName(ctx context.Context, restaurantID, etalaseID primitive.ObjectID, name string) (*models.Etalase, error) {
	filter := bson.M{"_id": etalaseID, "restaurant_id": restaurantID}
	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}}

	var previous models.Etalase
	if err := r.collection.FindOneAndUpdate(ctx, filter, update).Decode(&previous); err != nil {
		return nil, err
	}
	return &previous, nil
}

func (r *EtalaseRepo) Delete(ctx context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error) {
	filter := bson.M{"_id": etalaseID, "restaurant_id": restaurantID}

	var deleted models.Etalase
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
