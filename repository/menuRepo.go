package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

type MenuRepo struct {
	collection *mongo.Collection
}

func NewMenuRepo(collection *mongo.Collection) *MenuRepo {
	return &MenuRepo{collection: collection}
}

func menuFilterQuery(filter services.MenuFilter) bson.M {
	query := bson.M{"restaurant_id": filter.RestaurantID}
	if filter.EtalaseID != nil {
		query["etalase_id"] = *filter.EtalaseID
	}
	if filter.IsActive != nil {
		query["is_active"] = *filter.IsActive
	}
	return query
}

func (r *MenuRepo) Find(ctx context.Context, filter services.MenuFilter, page *helper.Pagination) ([]models.Menu, error) {
	opts := options.Find()
	if page != nil {
		opts.SetSkip(int64(page.Skip)).SetLimit(int64(page.Limit))
		if page.Sort != nil {
			opts.SetSort(bson.D{{Key: page.Sort.Field, Value: page.Sort.Direction}})
		}
	}

	cursor, err := r.collection.Find(ctx, menuFilterQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	var menus []models.Menu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepo) Count(ctx context.Context, filter services.MenuFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, menuFilterQuery(filter))
}

func (r *MenuRepo) FindByID(ctx context.Context, menuID primitive.ObjectID) (*models.Menu, error) {
	var menu models.Menu
	if err := r.collection.FindOne(ctx, bson.M{"_id": menuID}).Decode(&menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) FindBySlug(ctx context.Context, restaurantID primitive.ObjectID, slug string) (*models.Menu, error) {
	var menu models.Menu
	err := r.collection.FindOne(ctx, bson.M{"restaurant_id": restaurantID, "slug": slug}).Decode(&menu)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) Insert(ctx context.Context, menu *models.Menu) (primitive.ObjectID, error) {
	menu.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, menu); err != nil {
		return primitive.NilObjectID, err
	}
	return menu.ID, nil
}

func (r *MenuRepo) Update(ctx context.Context, restaurantID, menuID primitive.ObjectID, menu *models.Menu) (*models.Menu, error) {
	filter := bson.M{"_id": menuID, "restaurant_id": restaurantID}
	update := bson.M{"$set": bson.M{
		"etalase_id":      menu.EtalaseID,
		"name":            menu.Name,
		"description":     menu.Description,
		"price":           menu.Price,
		"stock":           menu.Stock,
		"is_bungkus_able": menu.IsBungkusAble,
		"gallery":         menu.Gallery,
		"updated_at":      menu.UpdatedAt,
	}}

	var previous models.Menu
	if err := r.collection.FindOneAndUpdate(ctx, filter, update).Decode(&previous); err != nil {
		return nil, err
	}
	return &previous, nil
}

func (r *MenuRepo) Delete(ctx context.Context, restaurantID, menuID primitive.ObjectID) (*models.Menu, error) {
	filter := bson.M{"_id": menuID, "restaurant_id": restaurantID}

	var deleted models.Menu
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
