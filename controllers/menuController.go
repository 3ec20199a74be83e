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

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// GetRestaurantMenus is the owner-side listing of all menus of the
// authenticated restaurant.
func (c *MenuController) GetRestaurantMenus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	query := r.URL.Query()
	result, err := c.service.List(ctx, identity.ID, services.MenuListParams{
		Limit:    query.Get("limit"),
		Page:     query.Get("page"),
		IsActive: query.Get("isActive"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menus retrieved successfully", result)
}

func (c *MenuController) CreateMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var body services.MenuBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := c.service.Create(ctx, identity.ID, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Menu created successfully", map[string]string{"id": id})
}

func (c *MenuController) GetMenuBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	menu, err := c.service.GetBySlug(ctx, identity.ID, mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menu retrieved successfully", menu)
}

func (c *MenuController) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var body services.MenuBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := c.service.Update(ctx, identity.ID, mux.Vars(r)["menu_id"], body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menu updated successfully", map[string]string{"id": id})
}

func (c *MenuController) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	id, err := c.service.Delete(ctx, identity.ID, mux.Vars(r)["menu_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menu deleted successfully", map[string]string{"id": id})
}

// BrowseRestaurantMenus is the public, sortable listing of a restaurant's
// active menus.
func (c *MenuController) BrowseRestaurantMenus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	query := r.URL.Query()
	result, err := c.service.Browse(ctx, mux.Vars(r)["username"], services.BrowseMenusParams{
		Limit:  query.Get("limit"),
		Page:   query.Get("page"),
		SortBy: query.Get("sortBy"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menus retrieved successfully", result)
}

func (c *MenuController) BrowseMenuBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	vars := mux.Vars(r)
	menu, err := c.service.BrowseBySlug(ctx, vars["username"], vars["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Menu retrieved successfully", menu)
}
