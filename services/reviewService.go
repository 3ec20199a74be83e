package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type ReviewFilter struct {
	RestaurantID      primitive.ObjectID
	Rating            *int
	ExcludeCustomerID *primitive.ObjectID
}

type ReviewRepository interface {
	Find(ctx context.Context, filter ReviewFilter, page *helper.Pagination) ([]models.ReviewWithCustomer, error)
	Count(ctx context.Context, filter ReviewFilter) (int64, error)
	FindByCustomerAndRestaurant(ctx context.Context, customerID, restaurantID primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, reviewID, restaurantID, customerID primitive.ObjectID, rating int, description string) (*models.Review, error)
	Delete(ctx context.Context, reviewID, restaurantID, customerID primitive.ObjectID) (*models.Review, error)
}

type ReviewBody struct {
	Rating      string `json:"rating" validate:"required,oneof=1 2 3 4 5"`
	Description string `json:"description" validate:"required,max=250"`
}

type ReviewListParams struct {
	Limit  string
	Page   string
	SortBy string
	Rating string
}

type ReviewerResponse struct {
	Username         string `json:"username"`
	Name             string `json:"name"`
	EverShoppingHere bool   `json:"everShoppingHere"`
}

type ReviewItemResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Rating      int              `json:"rating"`
	Reviewer    ReviewerResponse `json:"reviewer"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type OwnReviewResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	UserReview *OwnReviewResponse   `json:"userReview"`
	Reviews    []ReviewItemResponse `json:"reviews"`
	Pages      int                  `json:"pages"`
	Total      int64                `json:"total"`
}

// ReviewService covers both the customer-facing listing (with the caller's
// own review split out) and review mutations. A customer may only touch their
// own review; no duplicate-review check exists on create.
type ReviewService struct {
	reviews     ReviewRepository
	restaurants RestaurantRepository
}

func NewReviewService(reviews ReviewRepository, restaurants RestaurantRepository) *ReviewService {
	return &ReviewService{reviews: reviews, restaurants: restaurants}
}

// List returns the paginated reviews of a restaurant. When the caller is an
// authenticated customer, their own review is returned once in userReview and
// excluded from the paginated collection and from its count. Unlike the menu
// listing, no "page exceeds total pages" guard applies here.
func (s *ReviewService) List(ctx context.Context, restaurantUsername string, caller *models.CallerIdentity, params ReviewListParams) (*ReviewListResponse, error) {
	restaurant, err := s.restaurants.FindByUsername(ctx, restaurantUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewNotFound("restaurant not found")
		}
		return nil, err
	}

	page, appErr := helper.ParsePagination(params.Limit, params.Page)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := page.WithSort(params.SortBy, helper.ReviewSortKeys); appErr != nil {
		return nil, appErr
	}

	filter := ReviewFilter{RestaurantID: restaurant.ID}
	if params.Rating != "" {
		rating, err := strconv.Atoi(params.Rating)
		if err != nil || rating < 1 || rating > 5 {
			return nil, helper.NewInvalidArgument("rating query is not valid")
		}
		filter.Rating = &rating
	}

	var userReview *OwnReviewResponse
	if caller != nil && caller.Role == models.RoleCustomer {
		own, err := s.reviews.FindByCustomerAndRestaurant(ctx, caller.ID, restaurant.ID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		if own != nil {
			userReview = &OwnReviewResponse{
				ID:          own.ID.Hex(),
				Description: own.Description,
				Rating:      own.Rating,
				CreatedAt:   own.CreatedAt,
			}
		}
		callerID := caller.ID
		filter.ExcludeCustomerID = &callerID
	}

	total, err := s.reviews.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	items := make([]ReviewItemResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, ReviewItemResponse{
			ID:          review.ID.Hex(),
			Description: review.Description,
			Rating:      review.Rating,
			Reviewer: ReviewerResponse{
				Username:         review.Customer.Username,
				Name:             review.Customer.Name,
				EverShoppingHere: review.HasCustomerBeenShoppingHere,
			},
			CreatedAt: review.CreatedAt,
		})
	}

	return &ReviewListResponse{
		UserReview: userReview,
		Reviews:    items,
		Pages:      helper.TotalPages(total, page.Limit),
		Total:      total,
	}, nil
}

func (s *ReviewService) Create(ctx context.Context, restaurantUsername string, customerID primitive.ObjectID, body ReviewBody) (string, error) {
	restaurant, err := s.restaurants.FindByUsername(ctx, restaurantUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("restaurant not found")
		}
		return "", err
	}

	if err := validate.Struct(body); err != nil {
		return "", helper.FromValidation(err)
	}
	rating, _ := strconv.Atoi(body.Rating)

	id, err := s.reviews.Insert(ctx, &models.Review{
		CustomerID:                  customerID,
		RestaurantID:                restaurant.ID,
		Description:                 body.Description,
		Rating:                      rating,
		HasCustomerBeenShoppingHere: false,
		IsReplied:                   false,
		CreatedAt:                   time.Now(),
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *ReviewService) Update(ctx context.Context, restaurantUsername string, customerID primitive.ObjectID, reviewID string, body ReviewBody) (string, error) {
	if reviewID == "" {
		return "", helper.NewInvalidArgument("reviewId is missing")
	}

	restaurant, err := s.restaurants.FindByUsername(ctx, restaurantUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("restaurant not found")
		}
		return "", err
	}

	if err := validate.Struct(body); err != nil {
		return "", helper.FromValidation(err)
	}
	rating, _ := strconv.Atoi(body.Rating)

	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return "", helper.NewNotFound("review not found")
	}

	if _, err := s.reviews.Update(ctx, id, restaurant.ID, customerID, rating, body.Description); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("review not found")
		}
		return "", err
	}
	return reviewID, nil
}

func (s *ReviewService) Delete(ctx context.Context, restaurantUsername string, customerID primitive.ObjectID, reviewID string) (string, error) {
	if reviewID == "" {
		return "", helper.NewInvalidArgument("reviewId is missing")
	}

	restaurant, err := s.restaurants.FindByUsername(ctx, restaurantUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("restaurant not found")
		}
		return "", err
	}

	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return "", helper.NewNotFound("review not found")
	}

	if _, err := s.reviews.Delete(ctx, id, restaurant.ID, customerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("review not found")
		}
		return "", err
	}
	return reviewID, nil
}
