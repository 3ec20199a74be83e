package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

type ReviewRepo struct {
	collection *mongo.Collection
	// collection name joined on by the listing lookup
	customerCollection string
}

func NewReviewRepo(collection *mongo.Collection, customerCollection string) *ReviewRepo {
	return &ReviewRepo{collection: collection, customerCollection: customerCollection}
}

func reviewFilterQuery(filter services.ReviewFilter) bson.M {
	query := bson.M{"restaurant_id": filter.RestaurantID}
	if filter.Rating != nil {
		query["rating"] = *filter.Rating
	}
	if filter.ExcludeCustomerID != nil {
		query["customer_id"] = bson.M{"$ne": *filter.ExcludeCustomerID}
	}
	return query
}

func (r *ReviewRepo) Find(ctx context.Context, filter services.ReviewFilter, page *helper.Pagination) ([]models.ReviewWithCustomer, error) {
	matchStage := bson.D{{Key: "$match", Value: reviewFilterQuery(filter)}}

	pipeline := mongo.Pipeline{matchStage}
	if page != nil {
		if page.Sort != nil {
			pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: page.Sort.Field, Value: page.Sort.Direction}}}})
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: int64(page.Skip)}},
			bson.D{{Key: "$limit", Value: int64(page.Limit)}},
		)
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: r.customerCollection},
			{Key: "localField", Value: "customer_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "customer"},
		}}},
		bson.D{{Key: "$unwind", Value: "$customer"}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var reviews []models.ReviewWithCustomer
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepo) Count(ctx context.Context, filter services.ReviewFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, reviewFilterQuery(filter))
}

func (r *ReviewRepo) FindByCustomerAndRestaurant(ctx context.Context, customerID, restaurantID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{
		"customer_id":   customerID,
		"restaurant_id": restaurantID,
	}).Decode(&review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, err
	}
	return review.ID, nil
}

func (r *ReviewRepo) Update(ctx context.Context, reviewID, restaurantID, customerID primitive.ObjectID, rating int, description string) (*models.Review, error) {
	filter := bson.M{
		"_id":           reviewID,
		"restaurant_id": restaurantID,
		"customer_id":   customerID,
	}
	update := bson.M{"$set": bson.M{
		"rating":      rating,
		"description": description,
		"updated_at":  time.Now(),
	}}

	var previous models.Review
	if err := r.collection.FindOneAndUpdate(ctx, filter, update).Decode(&previous); err != nil {
		return nil, err
	}
	return &previous, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, reviewID, restaurantID, customerID primitive.ObjectID) (*models.Review, error) {
	filter := bson.M{
		"_id":           reviewID,
		"restaurant_id": restaurantID,
		"customer_id":   customerID,
	}

	var deleted models.Review
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
