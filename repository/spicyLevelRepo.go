package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type SpicyLevelRepo struct {
	collection *mongo.Collection
}

func NewSpicyLevelRepo(collection *mongo.Collection) *SpicyLevelRepo {
	return &SpicyLevelRepo{collection: collection}
}

func (r *SpicyLevelRepo) FindByMenu(ctx context.Context, menuID primitive.ObjectID) (*models.SpicyLevel, error) {
	var level models.SpicyLevel
	if err := r.collection.FindOne(ctx, bson.M{"menu_id": menuID}).Decode(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *SpicyLevelRepo) Insert(ctx context.Context, level *models.SpicyLevel) (primitive.ObjectID, error) {
	level.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, level); err != nil {
		return primitive.NilObjectID, err
	}
	return level.ID, nil
}

func (r *SpicyLevelRepo) UpdateMax(ctx context.Context, menuID primitive.ObjectID, maxSpicy int) error {
	filter := bson.M{"menu_id": menuID}
	update := bson.M{"$set": bson.M{"max_spicy": maxSpicy}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// DeleteByMenu removes the side-record if one exists. Deleting an absent
// record is not an error.
func (r *SpicyLevelRepo) DeleteByMenu(ctx context.Context, menuID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"menu_id": menuID})
	return err
}
