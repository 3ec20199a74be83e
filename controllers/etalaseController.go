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

type EtalaseController struct {
	service *services.EtalaseService
}

func NewEtalaseController(service *services.EtalaseService) *EtalaseController {
	return &EtalaseController{service: service}
}

func (c *EtalaseController) GetEtalases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	etalases, err := c.service.List(ctx, identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Etalases retrieved successfully", etalases)
}

func (c *EtalaseController) CreateEtalase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var req services.CreateEtalaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := c.service.Create(ctx, identity.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Etalase created successfully", map[string]string{"id": id})
}

func (c *EtalaseController) UpdateEtalase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	var req services.CreateEtalaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := c.service.Update(ctx, identity.ID, mux.Vars(r)["etalase_id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Etalase updated successfully", map[string]string{"id": id})
}

func (c *EtalaseController) DeleteEtalase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "caller identity is missing", nil)
		return
	}

	id, err := c.service.Delete(ctx, identity.ID, mux.Vars(r)["etalase_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Etalase deleted successfully", map[string]string{"id": id})
}
