package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	middleware "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/middlewares"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetRestaurantReviews serves anonymous and authenticated callers alike; an
// authenticated customer gets their own review split out as userReview.
func (c *ReviewController) GetRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	caller, _ := middleware.IdentityFromRequest(r)

	query := r.URL.Query()
	result, err := c.service.List(ctx, mux.Vars(r)["username"], caller, services.ReviewListParams{
		Limit:  query.Get("limit"),
		Page:   query.Get("page"),
		SortBy: query.Get("sortBy"),
		Rating: query.Get("rating"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Reviews retrieved successfully", result)
}

func (c *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var body services.ReviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := c.service.Create(ctx, mux.Vars(r)["username"], identity.ID, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Review created successfully", map[string]string{"id": id})
}

func (c *ReviewController) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var body services.ReviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	vars := mux.Vars(r)
	id, err := c.service.Update(ctx, vars["username"], identity.ID, vars["review_id"], body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Review updated successfully", map[string]string{"id": id})
}

func (c *ReviewController) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	vars := mux.Vars(r)
	id, err := c.service.Delete(ctx, vars["username"], identity.ID, vars["review_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Review deleted successfully", map[string]string{"id": id})
}
