package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

// In-memory repository fakes. They mirror the store contract the mongo
// implementations honor, including mongo.ErrNoDocuments for misses and
// single-field sort with skip/limit paging.

func pageBounds(page *helper.Pagination, n int) (int, int) {
	if page == nil {
		return 0, n
	}
	start := page.Skip
	if start > n {
		start = n
	}
	end := start + page.Limit
	if end > n {
		end = n
	}
	return start, end
}

type fakeMenuRepo struct {
	menus []models.Menu
}

func (f *fakeMenuRepo) matching(filter MenuFilter) []models.Menu {
	var out []models.Menu
	for _, m := range f.menus {
		if m.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.EtalaseID != nil && m.EtalaseID != *filter.EtalaseID {
			continue
		}
		if filter.IsActive != nil && m.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (f *fakeMenuRepo) Find(_ context.Context, filter MenuFilter, page *helper.Pagination) ([]models.Menu, error) {
	out := f.matching(filter)
	if page != nil && page.Sort != nil {
		key := *page.Sort
		sort.SliceStable(out, func(i, j int) bool {
			switch key.Field {
			case "price":
				if key.Direction < 0 {
					return out[i].Price > out[j].Price
				}
				return out[i].Price < out[j].Price
			default:
				if key.Direction < 0 {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
		})
	}
	start, end := pageBounds(page, len(out))
	return out[start:end], nil
}

func (f *fakeMenuRepo) Count(_ context.Context, filter MenuFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeMenuRepo) FindByID(_ context.Context, menuID primitive.ObjectID) (*models.Menu, error) {
	for i := range f.menus {
		if f.menus[i].ID == menuID {
			menu := f.menus[i]
			return &menu, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMenuRepo) FindBySlug(_ context.Context, restaurantID primitive.ObjectID, slug string) (*models.Menu, error) {
	for i := range f.menus {
		if f.menus[i].RestaurantID == restaurantID && f.menus[i].Slug == slug {
			menu := f.menus[i]
			return &menu, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMenuRepo) Insert(_ context.Context, menu *models.Menu) (primitive.ObjectID, error) {
	menu.ID = primitive.NewObjectID()
	f.menus = append(f.menus, *menu)
	return menu.ID, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, restaurantID, menuID primitive.ObjectID, menu *models.Menu) (*models.Menu, error) {
	for i := range f.menus {
		if f.menus[i].ID == menuID && f.menus[i].RestaurantID == restaurantID {
			previous := f.menus[i]
			f.menus[i].EtalaseID = menu.EtalaseID
			f.menus[i].Name = menu.Name
			f.menus[i].Description = menu.Description
			f.menus[i].Price = menu.Price
			f.menus[i].Stock = menu.Stock
			f.menus[i].IsBungkusAble = menu.IsBungkusAble
			f.menus[i].Gallery = menu.Gallery
			f.menus[i].UpdatedAt = menu.UpdatedAt
			return &previous, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMenuRepo) Delete(_ context.Context, restaurantID, menuID primitive.ObjectID) (*models.Menu, error) {
	for i := range f.menus {
		if f.menus[i].ID == menuID && f.menus[i].RestaurantID == restaurantID {
			deleted := f.menus[i]
			f.menus = append(f.menus[:i], f.menus[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeSpicyLevelRepo struct {
	levels []models.SpicyLevel
}

func (f *fakeSpicyLevelRepo) FindByMenu(_ context.Context, menuID primitive.ObjectID) (*models.SpicyLevel, error) {
	for i := range f.levels {
		if f.levels[i].MenuID == menuID {
			level := f.levels[i]
			return &level, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSpicyLevelRepo) Insert(_ context.Context, level *models.SpicyLevel) (primitive.ObjectID, error) {
	level.ID = primitive.NewObjectID()
	f.levels = append(f.levels, *level)
	return level.ID, nil
}

func (f *fakeSpicyLevelRepo) UpdateMax(_ context.Context, menuID primitive.ObjectID, maxSpicy int) error {
	for i := range f.levels {
		if f.levels[i].MenuID == menuID {
			f.levels[i].MaxSpicy = maxSpicy
		}
	}
	return nil
}

func (f *fakeSpicyLevelRepo) DeleteByMenu(_ context.Context, menuID primitive.ObjectID) error {
	kept := f.levels[:0]
	for _, level := range f.levels {
		if level.MenuID != menuID {
			kept = append(kept, level)
		}
	}
	f.levels = kept
	return nil
}

func (f *fakeSpicyLevelRepo) countForMenu(menuID primitive.ObjectID) int {
	count := 0
	for _, level := range f.levels {
		if level.MenuID == menuID {
			count++
		}
	}
	return count
}

type fakeEtalaseRepo struct {
	etalases []models.Etalase
}

func (f *fakeEtalaseRepo) FindByRestaurant(_ context.Context, restaurantID primitive.ObjectID) ([]models.Etalase, error) {
	var out []models.Etalase
	for _, e := range f.etalases {
		if e.RestaurantID == restaurantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEtalaseRepo) FindByID(_ context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error) {
	for i := range f.etalases {
		if f.etalases[i].ID == etalaseID && f.etalases[i].RestaurantID == restaurantID {
			etalase := f.etalases[i]
			return &etalase, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEtalaseRepo) Insert(_ context.Context, etalase *models.Etalase) (primitive.ObjectID, error) {
	etalase.ID = primitive.NewObjectID()
	f.etalases = append(f.etalases, *etalase)
	return etalase.ID, nil
}

func (f *fakeEtalaseRepo) UpdateName(_ context.Context, restaurantID, etalaseID primitive.ObjectID, name string) (*models.Etalase, error) {
	for i := range f.etalases {
		if f.etalases[i].ID == etalaseID && f.etalases[i].RestaurantID == restaurantID {
			previous := f.etalases[i]
			f.etalases[i].Name = name
			return &previous, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEtalaseRepo) Delete(_ context.Context, restaurantID, etalaseID primitive.ObjectID) (*models.Etalase, error) {
	for i := range f.etalases {
		if f.etalases[i].ID == etalaseID && f.etalases[i].RestaurantID == restaurantID {
			deleted := f.etalases[i]
			f.etalases = append(f.etalases[:i], f.etalases[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeRestaurantRepo struct {
	restaurants []models.Restaurant
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, restaurantID primitive.ObjectID) (*models.Restaurant, error) {
	for i := range f.restaurants {
		if f.restaurants[i].ID == restaurantID {
			restaurant := f.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRestaurantRepo) FindByUsername(_ context.Context, username string) (*models.Restaurant, error) {
	for i := range f.restaurants {
		if f.restaurants[i].Username == username {
			restaurant := f.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRestaurantRepo) FindByEmail(_ context.Context, email string) (*models.Restaurant, error) {
	for i := range f.restaurants {
		if f.restaurants[i].Email == email {
			restaurant := f.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRestaurantRepo) Insert(_ context.Context, restaurant *models.Restaurant) (primitive.ObjectID, error) {
	restaurant.ID = primitive.NewObjectID()
	f.restaurants = append(f.restaurants, *restaurant)
	return restaurant.ID, nil
}

type fakeCustomerRepo struct {
	customers []models.Customer
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, customerID primitive.ObjectID) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == customerID {
			customer := f.customers[i]
			return &customer, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].Email == email {
			customer := f.customers[i]
			return &customer, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCustomerRepo) Insert(_ context.Context, customer *models.Customer) (primitive.ObjectID, error) {
	customer.ID = primitive.NewObjectID()
	f.customers = append(f.customers, *customer)
	return customer.ID, nil
}

type fakeReviewRepo struct {
	reviews   []models.Review
	customers map[primitive.ObjectID]models.Customer
}

func (f *fakeReviewRepo) matching(filter ReviewFilter) []models.Review {
	var out []models.Review
	for _, r := range f.reviews {
		if r.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.Rating != nil && r.Rating != *filter.Rating {
			continue
		}
		if filter.ExcludeCustomerID != nil && r.CustomerID == *filter.ExcludeCustomerID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (f *fakeReviewRepo) Find(_ context.Context, filter ReviewFilter, page *helper.Pagination) ([]models.ReviewWithCustomer, error) {
	out := f.matching(filter)
	if page != nil && page.Sort != nil {
		key := *page.Sort
		sort.SliceStable(out, func(i, j int) bool {
			switch key.Field {
			case "rating":
				if key.Direction < 0 {
					return out[i].Rating > out[j].Rating
				}
				return out[i].Rating < out[j].Rating
			default:
				if key.Direction < 0 {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
		})
	}
	start, end := pageBounds(page, len(out))

	joined := make([]models.ReviewWithCustomer, 0, end-start)
	for _, review := range out[start:end] {
		joined = append(joined, models.ReviewWithCustomer{
			Review:   review,
			Customer: f.customers[review.CustomerID],
		})
	}
	return joined, nil
}

func (f *fakeReviewRepo) Count(_ context.Context, filter ReviewFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeReviewRepo) FindByCustomerAndRestaurant(_ context.Context, customerID, restaurantID primitive.ObjectID) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].CustomerID == customerID && f.reviews[i].RestaurantID == restaurantID {
			review := f.reviews[i]
			return &review, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return review.ID, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, reviewID, restaurantID, customerID primitive.ObjectID, rating int, description string) (*models.Review, error) {
	for i := range f.reviews {
		r := f.reviews[i]
		if r.ID == reviewID && r.RestaurantID == restaurantID && r.CustomerID == customerID {
			previous := r
			f.reviews[i].Rating = rating
			f.reviews[i].Description = description
			return &previous, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeReviewRepo) Delete(_ context.Context, reviewID, restaurantID, customerID primitive.ObjectID) (*models.Review, error) {
	for i := range f.reviews {
		r := f.reviews[i]
		if r.ID == reviewID && r.RestaurantID == restaurantID && r.CustomerID == customerID {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return &r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeWishlistRepo struct {
	entries     []models.Wishlist
	menus       map[primitive.ObjectID]models.Menu
	restaurants map[primitive.ObjectID]models.Restaurant
}

func (f *fakeWishlistRepo) FindByCustomer(_ context.Context, customerID primitive.ObjectID) ([]models.WishlistWithMenu, error) {
	var out []models.WishlistWithMenu
	for _, entry := range f.entries {
		if entry.CustomerID != customerID {
			continue
		}
		menu := f.menus[entry.MenuID]
		out = append(out, models.WishlistWithMenu{
			ID:         entry.ID,
			Menu:       menu,
			Restaurant: f.restaurants[menu.RestaurantID],
		})
	}
	return out, nil
}

func (f *fakeWishlistRepo) FindByCustomerAndMenu(_ context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error) {
	for i := range f.entries {
		if f.entries[i].CustomerID == customerID && f.entries[i].MenuID == menuID {
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeWishlistRepo) Insert(_ context.Context, entry *models.Wishlist) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	f.entries = append(f.entries, *entry)
	return entry.ID, nil
}

func (f *fakeWishlistRepo) Delete(_ context.Context, customerID, menuID primitive.ObjectID) (*models.Wishlist, error) {
	for i := range f.entries {
		if f.entries[i].CustomerID == customerID && f.entries[i].MenuID == menuID {
			deleted := f.entries[i]
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
