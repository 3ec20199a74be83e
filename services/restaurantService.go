package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, restaurantID primitive.ObjectID) (*models.Restaurant, error)
	FindByUsername(ctx context.Context, username string) (*models.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*models.Restaurant, error)
	Insert(ctx context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error)
}

type RestaurantProfileResponse struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Name        string         `json:"name"`
	Avatar      *string        `json:"avatar"`
	Contact     *string        `json:"contact"`
	OpeningHour string         `json:"openingHour"`
	ClosingHour string         `json:"closingHour"`
	DaysOff     []string       `json:"daysOff"`
	IsOpenNow   bool           `json:"isOpenNow"`
	Gallery     models.Gallery `json:"gallery"`
	PaymentMode string         `json:"paymentMode"`
}

type RestaurantService struct {
	restaurants RestaurantRepository
}

func NewRestaurantService(restaurants RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

// GetProfile is the public restaurant page read. The open/closed state is
// computed from the stored business hours; unparsable hours read as closed.
func (s *RestaurantService) GetProfile(ctx context.Context, username string) (*RestaurantProfileResponse, error) {
	restaurant, err := s.restaurants.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewNotFound("restaurant not found")
		}
		return nil, err
	}

	isOpen, err := helper.IsOpenNow(restaurant.OpeningHour, restaurant.ClosingHour, restaurant.DaysOff)
	if err != nil {
		isOpen = false
	}

	return &RestaurantProfileResponse{
		ID:          restaurant.ID.Hex(),
		Username:    restaurant.Username,
		Name:        restaurant.Name,
		Avatar:      restaurant.Avatar,
		Contact:     restaurant.Contact,
		OpeningHour: restaurant.OpeningHour,
		ClosingHour: restaurant.ClosingHour,
		DaysOff:     restaurant.DaysOff,
		IsOpenNow:   isOpen,
		Gallery:     restaurant.Gallery,
		PaymentMode: restaurant.PaymentMode,
	}, nil
}
