package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) (primitive.ObjectID, error)
}

type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService handles customer and restaurant signup/login. Restaurant signup
// creates the restaurant record with default business hours and an empty
// gallery; profile updates fill those in later.
type AuthService struct {
	customers   CustomerRepository
	restaurants RestaurantRepository
}

func NewAuthService(customers CustomerRepository, restaurants RestaurantRepository) *AuthService {
	return &AuthService{customers: customers, restaurants: restaurants}
}

func (s *AuthService) CustomerSignUp(ctx context.Context, req SignUpRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", helper.FromValidation(err)
	}

	if _, err := s.customers.FindByEmail(ctx, req.Email); err == nil {
		return "", helper.NewInvalidArgument("email is already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	now := time.Now()
	id, err := s.customers.Insert(ctx, &models.Customer{
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *AuthService) CustomerLogin(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, helper.FromValidation(err)
	}

	customer, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewUnauthenticated("email or password is incorrect")
		}
		return nil, err
	}
	if !verifyPassword(customer.Password, req.Password) {
		return nil, helper.NewUnauthenticated("email or password is incorrect")
	}

	token, refreshToken, err := helper.GenerateAllTokens(customer.ID.Hex(), models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token, RefreshToken: refreshToken}, nil
}

func (s *AuthService) RestaurantSignUp(ctx context.Context, req SignUpRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", helper.FromValidation(err)
	}

	if _, err := s.restaurants.FindByEmail(ctx, req.Email); err == nil {
		return "", helper.NewInvalidArgument("email is already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	now := time.Now()
	id, err := s.restaurants.Insert(ctx, &models.Restaurant{
		Username:    req.Username,
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		OpeningHour: "08:00",
		ClosingHour: "21:00",
		PaymentMode: "cash",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *AuthService) RestaurantLogin(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, helper.FromValidation(err)
	}

	restaurant, err := s.restaurants.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewUnauthenticated("email or password is incorrect")
		}
		return nil, err
	}
	if !verifyPassword(restaurant.Password, req.Password) {
		return nil, helper.NewUnauthenticated("email or password is incorrect")
	}

	token, refreshToken, err := helper.GenerateAllTokens(restaurant.ID.Hex(), models.RoleRestaurant)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token, RefreshToken: refreshToken}, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func verifyPassword(hashed, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(provided)) == nil
}
