package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	middleware "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/middlewares"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

type WishlistController struct {
	service *services.WishlistService
}

func NewWishlistController(service *services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

func (c *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	items, err := c.service.List(ctx, identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Wishlist retrieved successfully", items)
}

func (c *WishlistController) AddWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	id, err := c.service.Add(ctx, identity.ID, mux.Vars(r)["menu_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Menu added to wishlist successfully", map[string]string{"id": id})
}

func (c *WishlistController) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	contained, err := c.service.Contains(ctx, identity.ID, mux.Vars(r)["menu_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Wishlist checked successfully", map[string]bool{"isWishlisted": contained})
}

func (c *WishlistController) RemoveWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	id, err := c.service.Remove(ctx, identity.ID, mux.Vars(r)["menu_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menu removed from wishlist successfully", map[string]string{"id": id})
}
