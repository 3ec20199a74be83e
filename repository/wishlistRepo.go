package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type WishlistRepo struct {
	collection           *mongo.Collection
	menuCollection       string
	restaurantCollection string
}

func NewWishlistRepo(collection *mongo.Collection, menuCollection, restaurantCollection string) *WishlistRepo {
	return &WishlistRepo{
		collection:           collection,
		menuCollection:       menuCollection,
		restaurantCollection: restaurantCollection,
	}
}

// FindByCustomer inlines each entry's menu and, transitively, the menu's
// owning restaurant.
func (r *WishlistRepo) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.WishlistWithMenu, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.menuCollection},
			{Key: "localField", Value: "menu_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menu"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menu"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.restaurantCollection},
			{Key: "localField", Value: "menu.restaurant_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "restaurant"},
		}}},
		bson.D{{Key: "$unwind", Value: "$restaurant"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var entries []models.WishlistWithMenu
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WishlistRepo) FindByCustomerAndMenu(ctx context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error) {
	var entry models.Wishlist
	err := r.collection.FindOne(ctx, bson.M{
		"customer_id": customerID,
		"menu_id":     menuID,
	}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepo) Insert(ctx context.Context, entry *models.Wishlist) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return primitive.NilObjectID, err
	}
	return entry.ID, nil
}

func (r *WishlistRepo) Delete(ctx context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error) {
	filter := bson.M{"customer_id": customerID, "menu_id": menuID}

	var deleted models.Wishlist
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
