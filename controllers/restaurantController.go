package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

type RestaurantController struct {
	service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{service: service}
}

func (c *RestaurantController) GetRestaurantProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	profile, err := c.service.GetProfile(ctx, mux.Vars(r)["username"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Restaurant retrieved successfully", profile)
}
