package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type EtalaseRepository interface {
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Etalase, error)
	FindByID(ctx context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error)
	Insert(ctx context.Context, etalase *models.Etalase) (primitive.ObjectID, error)
	UpdateName(ctx context.Context, restaurantID, etalaseID primitive.ObjectID, name string) (*models.Etalase, error)
	Delete(ctx context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error)
}

type CreateEtalaseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

type EtalaseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TotalItem int64  `json:"totalItem"`
}

// EtalaseService owns category CRUD for one restaurant. The store enforces no
// referential integrity, so the "cannot delete a non-empty etalase" rule is a
// hand-coded guard here.
type EtalaseService struct {
	etalases EtalaseRepository
	menus    MenuRepository
}

func NewEtalaseService(etalases EtalaseRepository, menus MenuRepository) *EtalaseService {
	return &EtalaseService{etalases: etalases, menus: menus}
}

func (s *EtalaseService) List(ctx context.Context, restaurantID primitive.ObjectID) ([]EtalaseResponse, error) {
	etalases, err := s.etalases.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	responses := make([]EtalaseResponse, 0, len(etalases))
	for _, etalase := range etalases {
		etalaseID := etalase.ID
		total, err := s.menus.Count(ctx, MenuFilter{RestaurantID: restaurantID, EtalaseID: &etalaseID})
		if err != nil {
			return nil, err
		}
		responses = append(responses, EtalaseResponse{
			ID:        etalase.ID.Hex(),
			Name:      etalase.Name,
			TotalItem: total,
		})
	}
	return responses, nil
}

func (s *EtalaseService) Create(ctx context.Context, restaurantID primitive.ObjectID, req CreateEtalaseRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", helper.FromValidation(err)
	}

	now := time.Now()
	id, err := s.etalases.Insert(ctx, &models.Etalase{
		RestaurantID: restaurantID,
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *EtalaseService) Update(ctx context.Context, restaurantID primitive.ObjectID, etalaseID string, req CreateEtalaseRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", helper.FromValidation(err)
	}

	id, err := primitive.ObjectIDFromHex(etalaseID)
	if err != nil {
		// malformed ids are indistinguishable from missing ones
		return "", helper.NewNotFound("etalase not found")
	}

	if _, err := s.etalases.UpdateName(ctx, restaurantID, id, req.Name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("etalase not found")
		}
		return "", err
	}
	return etalaseID, nil
}

func (s *EtalaseService) Delete(ctx context.Context, restaurantID primitive.ObjectID, etalaseID string) (string, error) {
	id, err := primitive.ObjectIDFromHex(etalaseID)
	if err != nil {
		return "", helper.NewNotFound("etalase not found")
	}

	if _, err := s.etalases.FindByID(ctx, restaurantID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("etalase not found")
		}
		return "", err
	}

	total, err := s.menus.Count(ctx, MenuFilter{RestaurantID: restaurantID, EtalaseID: &id})
	if err != nil {
		return "", err
	}
	if total > 0 {
		return "", helper.NewInvalidArgument("etalase is not empty")
	}

	if _, err := s.etalases.Delete(ctx, restaurantID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("etalase not found")
		}
		return "", err
	}
	return etalaseID, nil
}
