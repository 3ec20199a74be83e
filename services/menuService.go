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

type MenuFilter struct {
	RestaurantID primitive.ObjectID
	EtalaseID    *primitive.ObjectID
	IsActive     *bool
}

type MenuRepository interface {
	Find(ctx context.Context, filter MenuFilter, page *helper.Pagination) ([]models.Menu, error)
	Count(ctx context.Context, filter MenuFilter) (int64, error)
	FindByID(ctx context.Context, menuID primitive.ObjectID) (*models.Menu, error)
	FindBySlug(ctx context.Context, restaurantID primitive.ObjectID, slug string) (*models.Menu, error)
	Insert(ctx context.Context, menu *models.Menu) (primitive.ObjectID, error)
	// Update replaces the mutable fields of the matched menu and returns the
	// pre-update document, or mongo.ErrNoDocuments when nothing matched.
	Update(ctx context.Context, restaurantID, menuID primitive.ObjectID, menu *models.Menu) (*models.Menu, error)
	Delete(ctx context.Context, restaurantID, menuID primitive.ObjectID) (*models.Menu, error)
}

type SpicyLevelRepository interface {
	FindByMenu(ctx context.Context, menuID primitive.ObjectID) (*models.SpicyLevel, error)
	Insert(ctx context.Context, level *models.SpicyLevel) (primitive.ObjectID, error)
	UpdateMax(ctx context.Context, menuID primitive.ObjectID, maxSpicy int) error
	DeleteByMenu(ctx context.Context, menuID primitive.ObjectID) error
}

type MenuBody struct {
	Name          string   `json:"name" validate:"required,min=1,max=80,menuname"`
	Description   string   `json:"description" validate:"required,min=1,max=3000"`
	EtalaseID     string   `json:"etalaseId" validate:"required"`
	Price         int      `json:"price" validate:"required,gt=0"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	IsBungkusAble bool     `json:"isBungkusAble"`
	Images        []string `json:"images" validate:"required,min=1,max=5,dive,required"`
	MaxSpicy      *int     `json:"maxSpicy"`
}

type MenuListParams struct {
	Limit    string
	Page     string
	IsActive string
}

type MenuListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	Price    int    `json:"price"`
}

type MenuListResponse struct {
	Menus []MenuListItem `json:"menus"`
	Pages int            `json:"pages"`
	Total int64          `json:"total"`
}

type BrowseMenusParams struct {
	Limit  string
	Page   string
	SortBy string
}

type BrowseMenuItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Price         int     `json:"price"`
	Image         *string `json:"image"`
	IsBungkusAble bool    `json:"isBungkusAble"`
}

type BrowseMenusResponse struct {
	Menus []BrowseMenuItem `json:"menus"`
	Pages int              `json:"pages"`
	Total int64            `json:"total"`
}

type MenuDetailResponse struct {
	ID            string         `json:"id"`
	EtalaseID     string         `json:"etalaseId"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Price         int            `json:"price"`
	Stock         int            `json:"stock"`
	IsActive      bool           `json:"isActive"`
	IsBungkusAble bool           `json:"isBungkusAble"`
	MaxSpicy      *int           `json:"maxSpicy"`
	Gallery       models.Gallery `json:"gallery"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// MenuService owns menu CRUD and the full lifecycle of the optional
// SpicyLevel side-record. A menu must always reference an existing etalase;
// the reference is checked here, never by the store.
type MenuService struct {
	menus       MenuRepository
	spicyLevels SpicyLevelRepository
	etalases    EtalaseRepository
	restaurants RestaurantRepository
}

func NewMenuService(menus MenuRepository, spicyLevels SpicyLevelRepository, etalases EtalaseRepository, restaurants RestaurantRepository) *MenuService {
	return &MenuService{
		menus:       menus,
		spicyLevels: spicyLevels,
		etalases:    etalases,
		restaurants: restaurants,
	}
}

// List is the restaurant-facing menu listing: insertion order, projected down
// to {id, name, isActive, price}.
func (s *MenuService) List(ctx context.Context, restaurantID primitive.ObjectID, params MenuListParams) (*MenuListResponse, error) {
	filter := MenuFilter{RestaurantID: restaurantID}
	switch params.IsActive {
	case "":
	case "0":
		inactive := false
		filter.IsActive = &inactive
	case "1":
		active := true
		filter.IsActive = &active
	default:
		return nil, helper.NewInvalidArgument("isActive query is not valid")
	}

	page, appErr := helper.ParsePagination(params.Limit, params.Page)
	if appErr != nil {
		return nil, appErr
	}

	total, err := s.menus.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	pages := helper.TotalPages(total, page.Limit)
	if page.ExceedsTotal(pages) {
		return nil, helper.NewInvalidArgument("page exceeds total pages")
	}

	menus, err := s.menus.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	items := make([]MenuListItem, 0, len(menus))
	for _, menu := range menus {
		items = append(items, MenuListItem{
			ID:       menu.ID.Hex(),
			Name:     menu.Name,
			IsActive: menu.IsActive,
			Price:    menu.Price,
		})
	}
	return &MenuListResponse{Menus: items, Pages: pages, Total: total}, nil
}

// Browse is the customer-facing listing of a restaurant's active menus,
// sortable by recency or price.
func (s *MenuService) Browse(ctx context.Context, restaurantUsername string, params BrowseMenusParams) (*BrowseMenusResponse, error) {
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
	if appErr := page.WithSort(params.SortBy, helper.MenuSortKeys); appErr != nil {
		return nil, appErr
	}

	active := true
	filter := MenuFilter{RestaurantID: restaurant.ID, IsActive: &active}

	total, err := s.menus.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	pages := helper.TotalPages(total, page.Limit)
	if page.ExceedsTotal(pages) {
		return nil, helper.NewInvalidArgument("page exceeds total pages")
	}

	menus, err := s.menus.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	items := make([]BrowseMenuItem, 0, len(menus))
	for _, menu := range menus {
		items = append(items, BrowseMenuItem{
			ID:            menu.ID.Hex(),
			Name:          menu.Name,
			Slug:          menu.Slug,
			Price:         menu.Price,
			Image:         menu.Gallery.Image1,
			IsBungkusAble: menu.IsBungkusAble,
		})
	}
	return &BrowseMenusResponse{Menus: items, Pages: pages, Total: total}, nil
}

func (s *MenuService) Create(ctx context.Context, restaurantID primitive.ObjectID, body MenuBody) (string, error) {
	if err := validate.Struct(body); err != nil {
		return "", helper.FromValidation(err)
	}

	etalaseID, err := s.resolveEtalase(ctx, restaurantID, body.EtalaseID)
	if err != nil {
		return "", err
	}

	stock := 0
	if body.Stock != nil {
		stock = *body.Stock
	}

	now := time.Now()
	menuID, err := s.menus.Insert(ctx, &models.Menu{
		RestaurantID:  restaurantID,
		EtalaseID:     etalaseID,
		Name:          body.Name,
		Slug:          helper.GenerateSlug(body.Name),
		Description:   body.Description,
		Price:         body.Price,
		Stock:         stock,
		IsActive:      true,
		IsBungkusAble: body.IsBungkusAble,
		Gallery:       helper.NormalizeGallery(body.Images),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return "", err
	}

	if body.MaxSpicy != nil && *body.MaxSpicy != 0 {
		if _, err := s.spicyLevels.Insert(ctx, &models.SpicyLevel{
			MenuID:   menuID,
			MaxSpicy: *body.MaxSpicy,
		}); err != nil {
			return "", err
		}
	}
	return menuID.Hex(), nil
}

func (s *MenuService) GetBySlug(ctx context.Context, restaurantID primitive.ObjectID, slug string) (*MenuDetailResponse, error) {
	menu, err := s.menus.FindBySlug(ctx, restaurantID, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewNotFound("menu not found")
		}
		return nil, err
	}

	var maxSpicy *int
	level, err := s.spicyLevels.FindByMenu(ctx, menu.ID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if level != nil {
		maxSpicy = &level.MaxSpicy
	}

	return &MenuDetailResponse{
		ID:            menu.ID.Hex(),
		EtalaseID:     menu.EtalaseID.Hex(),
		Name:          menu.Name,
		Slug:          menu.Slug,
		Description:   menu.Description,
		Price:         menu.Price,
		Stock:         menu.Stock,
		IsActive:      menu.IsActive,
		IsBungkusAble: menu.IsBungkusAble,
		MaxSpicy:      maxSpicy,
		Gallery:       menu.Gallery,
		CreatedAt:     menu.CreatedAt,
	}, nil
}

// BrowseBySlug is the customer-facing menu detail read, scoped by the
// restaurant's username.
func (s *MenuService) BrowseBySlug(ctx context.Context, restaurantUsername, slug string) (*MenuDetailResponse, error) {
	restaurant, err := s.restaurants.FindByUsername(ctx, restaurantUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helper.NewNotFound("restaurant not found")
		}
		return nil, err
	}
	return s.GetBySlug(ctx, restaurant.ID, slug)
}

func (s *MenuService) Update(ctx context.Context, restaurantID primitive.ObjectID, menuID string, body MenuBody) (string, error) {
	if menuID == "" {
		return "", helper.NewInvalidArgument("menuId is missing")
	}
	if err := validate.Struct(body); err != nil {
		return "", helper.FromValidation(err)
	}

	id, err := primitive.ObjectIDFromHex(menuID)
	if err != nil {
		return "", helper.NewNotFound("menu not found")
	}

	etalaseID, resolveErr := s.resolveEtalase(ctx, restaurantID, body.EtalaseID)
	if resolveErr != nil {
		return "", resolveErr
	}

	stock := 0
	if body.Stock != nil {
		stock = *body.Stock
	}

	// returns the pre-update document; only the id is authoritative here
	_, err = s.menus.Update(ctx, restaurantID, id, &models.Menu{
		EtalaseID:     etalaseID,
		Name:          body.Name,
		Description:   body.Description,
		Price:         body.Price,
		Stock:         stock,
		IsBungkusAble: body.IsBungkusAble,
		Gallery:       helper.NormalizeGallery(body.Images),
		UpdatedAt:     time.Now(),
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("menu not found")
		}
		return "", err
	}

	if err := s.reconcileSpicyLevel(ctx, id, body.MaxSpicy); err != nil {
		return "", err
	}
	return menuID, nil
}

func (s *MenuService) Delete(ctx context.Context, restaurantID primitive.ObjectID, menuID string) (string, error) {
	if menuID == "" {
		return "", helper.NewInvalidArgument("menuId is missing")
	}

	id, err := primitive.ObjectIDFromHex(menuID)
	if err != nil {
		return "", helper.NewNotFound("menu not found")
	}

	if _, err := s.menus.Delete(ctx, restaurantID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", helper.NewNotFound("menu not found")
		}
		return "", err
	}

	// cascade: a deleted menu never leaves a side-record behind
	if err := s.spicyLevels.DeleteByMenu(ctx, id); err != nil {
		return "", err
	}
	return menuID, nil
}

func (s *MenuService) resolveEtalase(ctx context.Context, restaurantID primitive.ObjectID, rawEtalaseID string) (primitive.ObjectID, error) {
	etalaseID, err := primitive.ObjectIDFromHex(rawEtalaseID)
	if err != nil {
		return primitive.NilObjectID, helper.NewNotFound("etalase not found")
	}
	if _, err := s.etalases.FindByID(ctx, restaurantID, etalaseID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, helper.NewNotFound("etalase not found")
		}
		return primitive.NilObjectID, err
	}
	return etalaseID, nil
}

// reconcileSpicyLevel drives the side-record toward the incoming value: a
// truthy maxSpicy upserts the row, anything else removes it.
func (s *MenuService) reconcileSpicyLevel(ctx context.Context, menuID primitive.ObjectID, maxSpicy *int) error {
	if maxSpicy != nil && *maxSpicy != 0 {
		_, err := s.spicyLevels.FindByMenu(ctx, menuID)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return err
			}
			_, err = s.spicyLevels.Insert(ctx, &models.SpicyLevel{MenuID: menuID, MaxSpicy: *maxSpicy})
			return err
		}
		return s.spicyLevels.UpdateMax(ctx, menuID, *maxSpicy)
	}
	return s.spicyLevels.DeleteByMenu(ctx, menuID)
}
