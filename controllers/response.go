package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
)

func writeJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	payload := map[string]interface{}{
		"success": status < http.StatusBadRequest,
		"message": message,
	}
	if data != nil {
		payload["data"] = data
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the service error taxonomy onto HTTP status codes. Store
// internals never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	switch helper.KindOf(err) {
	case helper.KindInvalidArgument:
		writeJSON(w, http.StatusBadRequest, err.Error(), nil)
	case helper.KindNotFound:
		writeJSON(w, http.StatusNotFound, err.Error(), nil)
	case helper.KindUnauthenticated:
		writeJSON(w, http.StatusUnauthorized, err.Error(), nil)
	default:
		writeJSON(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
