package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type reviewFixture struct {
	service     *ReviewService
	reviews     *fakeReviewRepo
	restaurants *fakeRestaurantRepo

	restaurantID primitive.ObjectID
	customerIDs  []primitive.ObjectID
}

// seeds a restaurant "warungenak" with five reviews rated 5,4,1,5,4 by five
// distinct customers.
func newReviewFixture() *reviewFixture {
	reviews := &fakeReviewRepo{customers: map[primitive.ObjectID]models.Customer{}}
	restaurants := &fakeRestaurantRepo{}

	restaurantID := primitive.NewObjectID()
	restaurants.restaurants = append(restaurants.restaurants, models.Restaurant{
		ID:       restaurantID,
		Username: "warungenak",
		Name:     "Warung Enak",
	})

	ratings := []int{5, 4, 1, 5, 4}
	var customerIDs []primitive.ObjectID
	base := time.Now().Add(-time.Hour)
	for i, rating := range ratings {
		customerID := primitive.NewObjectID()
		customerIDs = append(customerIDs, customerID)
		reviews.customers[customerID] = models.Customer{
			ID:       customerID,
			Username: "pelanggan" + string(rune('a'+i)),
			Name:     "Pelanggan " + string(rune('A'+i)),
		}
		reviews.reviews = append(reviews.reviews, models.Review{
			ID:           primitive.NewObjectID(),
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Description:  "enak banget",
			Rating:       rating,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}

	return &reviewFixture{
		service:      NewReviewService(reviews, restaurants),
		reviews:      reviews,
		restaurants:  restaurants,
		restaurantID: restaurantID,
		customerIDs:  customerIDs,
	}
}

func TestReviewListSorting(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	result, err := f.service.List(ctx, "warungenak", nil, ReviewListParams{SortBy: "highestrating"})
	require.NoError(t, err)
	require.Len(t, result.Reviews, 5)
	assert.Equal(t, 5, result.Reviews[0].Rating)
	assert.Equal(t, 5, result.Reviews[1].Rating)
	assert.Equal(t, 1, result.Reviews[4].Rating)

	result, err = f.service.List(ctx, "warungenak", nil, ReviewListParams{SortBy: "lowestrating"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reviews[0].Rating)
}

func TestReviewListOwnReviewSplit(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	caller := &models.CallerIdentity{ID: f.customerIDs[0], Role: models.RoleCustomer}
	result, err := f.service.List(ctx, "warungenak", caller, ReviewListParams{})
	require.NoError(t, err)

	require.NotNil(t, result.UserReview)
	assert.Equal(t, 5, result.UserReview.Rating)

	// the caller's review never appears in the paginated collection and the
	// count excludes it
	for _, review := range result.Reviews {
		assert.NotEqual(t, result.UserReview.ID, review.ID)
	}
	assert.Equal(t, int64(4), result.Total)
	assert.Len(t, result.Reviews, 4)

	// reviewer identity is joined in
	assert.NotEmpty(t, result.Reviews[0].Reviewer.Username)
}

func TestReviewListAnonymous(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	result, err := f.service.List(ctx, "warungenak", nil, ReviewListParams{})
	require.NoError(t, err)
	assert.Nil(t, result.UserReview)
	assert.Equal(t, int64(5), result.Total)
}

func TestReviewListCallerWithoutReview(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	caller := &models.CallerIdentity{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	result, err := f.service.List(ctx, "warungenak", caller, ReviewListParams{})
	require.NoError(t, err)
	assert.Nil(t, result.UserReview)
	assert.Equal(t, int64(5), result.Total)
}

func TestReviewListRatingFilter(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	result, err := f.service.List(ctx, "warungenak", nil, ReviewListParams{Rating: "4"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	for _, review := range result.Reviews {
		assert.Equal(t, 4, review.Rating)
	}

	_, err = f.service.List(ctx, "warungenak", nil, ReviewListParams{Rating: "6"})
	assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))

	_, err = f.service.List(ctx, "warungenak", nil, ReviewListParams{Rating: "abc"})
	assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))
}

// the "page exceeds total pages" guard belongs to the menu listing only
func TestReviewListNoPageGuard(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	result, err := f.service.List(ctx, "warungenak", nil, ReviewListParams{Page: "10"})
	require.NoError(t, err)
	assert.Empty(t, result.Reviews)
	assert.Equal(t, int64(5), result.Total)
}

func TestReviewListUnknownRestaurant(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	_, err := f.service.List(ctx, "nobody", nil, ReviewListParams{})
	assert.Equal(t, helper.KindNotFound, helper.KindOf(err))
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("no duplicate check per customer and restaurant", func(t *testing.T) {
		f := newReviewFixture()
		customerID := primitive.NewObjectID()
		body := ReviewBody{Rating: "5", Description: "mantap"}

		first, err := f.service.Create(ctx, "warungenak", customerID, body)
		require.NoError(t, err)
		second, err := f.service.Create(ctx, "warungenak", customerID, body)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.Len(t, f.reviews.reviews, 7)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		f := newReviewFixture()
		id, err := f.service.Create(ctx, "warungenak", primitive.NewObjectID(), ReviewBody{Rating: "3", Description: "biasa saja"})
		require.NoError(t, err)

		oid, _ := primitive.ObjectIDFromHex(id)
		for _, review := range f.reviews.reviews {
			if review.ID == oid {
				assert.False(t, review.HasCustomerBeenShoppingHere)
				assert.False(t, review.IsReplied)
				assert.Equal(t, 3, review.Rating)
				return
			}
		}
		t.Fatal("inserted review not found")
	})

	t.Run("unknown restaurant fails with NotFound", func(t *testing.T) {
		f := newReviewFixture()
		_, err := f.service.Create(ctx, "nobody", primitive.NewObjectID(), ReviewBody{Rating: "5", Description: "ok"})
		assert.Equal(t, helper.KindNotFound, helper.KindOf(err))
	})

	t.Run("invalid body fails with InvalidArgument", func(t *testing.T) {
		f := newReviewFixture()
		_, err := f.service.Create(ctx, "warungenak", primitive.NewObjectID(), ReviewBody{Rating: "6", Description: "ok"})
		assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))

		_, err = f.service.Create(ctx, "warungenak", primitive.NewObjectID(), ReviewBody{
			Rating:      "4",
			Description: strings.Repeat("a", 251),
		})
		assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))
	})
}

func TestReviewUpdateOwnership(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	own := f.reviews.reviews[0]
	body := ReviewBody{Rating: "2", Description: "sudah berubah"}

	// someone else's review is indistinguishable from a missing one
	_, err := f.service.Update(ctx, "warungenak", f.customerIDs[1], own.ID.Hex(), body)
	assert.Equal(t, helper.KindNotFound, helper.KindOf(err))

	id, err := f.service.Update(ctx, "warungenak", own.CustomerID, own.ID.Hex(), body)
	require.NoError(t, err)
	assert.Equal(t, own.ID.Hex(), id)
	assert.Equal(t, 2, f.reviews.reviews[0].Rating)

	_, err = f.service.Update(ctx, "warungenak", own.CustomerID, "", body)
	assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))

	_, err = f.service.Update(ctx, "warungenak", own.CustomerID, "bad-id", body)
	assert.Equal(t, helper.KindNotFound, helper.KindOf(err))
}

func TestReviewDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()

	own := f.reviews.reviews[0]

	_, err := f.service.Delete(ctx, "warungenak", f.customerIDs[1], own.ID.Hex())
	assert.Equal(t, helper.KindNotFound, helper.KindOf(err))
	assert.Len(t, f.reviews.reviews, 5)

	id, err := f.service.Delete(ctx, "warungenak", own.CustomerID, own.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, own.ID.Hex(), id)
	assert.Len(t, f.reviews.reviews, 4)

	_, err = f.service.Delete(ctx, "warungenak", own.CustomerID, "")
	assert.Equal(t, helper.KindInvalidArgument, helper.KindOf(err))
}
