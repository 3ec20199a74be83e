package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
)

func EtalaseProtectedRoutes(router *mux.Router, c *controllers.EtalaseController) {
	router.HandleFunc("/etalase", c.GetEtalases).Methods(http.MethodGet)
	router.HandleFunc("/etalase", c.CreateEtalase).Methods(http.MethodPost)
	router.HandleFunc("/etalase/{etalase_id}", c.UpdateEtalase).Methods(http.MethodPut)
	router.HandleFunc("/etalase/{etalase_id}", c.DeleteEtalase).Methods(http.MethodDelete)
}
