package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type WishlistRepository interface {
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.WishlistWithMenu, error)
	FindByCustomerAndMenu(ctx context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error)
	Insert(ctx context.Context, entry *models.Wishlist) (primitive.ObjectID, error)
	Delete(ctx context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error)
}

type WishlistRestaurantResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type WishlistMenuResponse struct {
	Image      *string                    `json:"image"`
	Name       string                     `json:"name"`
	Slug       string                     `json:"slug"`
	Restaurant WishlistRestaurantResponse `json:"restaurant"`
}

type WishlistItemResponse struct {
	ID   string               `json:"id"`
	Menu WishlistMenuResponse `json:"menu"`
}

// WishlistService links customers to menus. Nothing prevents duplicate
// entries for the same (customer, menu) pair.
type WishlistService struct {
	wishlists WishlistRepository
	menus     MenuRepository
}

func NewWishlistService(wishlists WishlistRepository, menus MenuRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, menus: menus}
}

func (s *WishlistService) List(ctx context.Context, customerID primitive.ObjectID) ([]WishlistItemResponse, error) {
	entries, err := s.wishlists.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]WishlistItemResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, WishlistItemResponse{
			ID: entry.ID.Hex(),
			Menu: WishlistMenuResponse{
				Image: entry.Menu.Gallery.Image1,
				Name:  entry.Menu.Name,
				Slug:  entry.Menu.Slug,
				Restaurant: WishlistRestaurantResponse{
					Name:     entry.Restaurant.Name,
					Username: entry.Restaurant.Username,
				},
			},
		})
	}
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, customerID primitive.ObjectID, menuID string) (string, error) {
	if menuID == "" {
		return "", helper.NewInvalidArgument("menuId is missing")
	}

	id, err := primitive.ObjectIDFromHex(menuID)
	if err != nil {
		return "", helper.NewNotFound("menu not found")
	}

	if _, err := s.menus.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("menu not found")
		}
		return "", err
	}

	entryID, err := s.wishlists.Insert(ctx, &models.Wishlist{
		CustomerID: customerID,
		MenuID:     id,
	})
	if err != nil {
		return "", err
	}
	return entryID.Hex(), nil
}

// Contains reports whether the menu is on the customer's wishlist. A
// malformed menu id is treated as "not on the wishlist", not an error.
func (s *WishlistService) Contains(ctx context.Context, customerID primitive.ObjectID, menuID string) (bool, error) {
	if menuID == "" {
		return false, helper.NewInvalidArgument("menuId is missing")
	}

	id, err := primitive.ObjectIDFromHex(menuID)
	if err != nil {
		return false, nil
	}

	if _, err := s.wishlists.FindByCustomerAndMenu(ctx, customerID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *WishlistService) Remove(ctx context.Context, customerID primitive.ObjectID, menuID string) (string, error) {
	if menuID == "" {
		return "", helper.NewInvalidArgument("menuId is missing")
	}

	id, err := primitive.ObjectIDFromHex(menuID)
	if err != nil {
		return "", helper.NewNotFound("wishlist not found")
	}

	removed, err := s.wishlists.Delete(ctx, customerID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("wishlist not found")
		}
		return "", err
	}
	return removed.ID.Hex(), nil
}
