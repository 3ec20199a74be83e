package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
)

func MenuProtectedRoutes(router *mux.Router, c *controllers.MenuController) {
	router.HandleFunc("/menus", c.GetRestaurantMenus).Methods(http.MethodGet)
	router.HandleFunc("/menus", c.CreateMenu).Methods(http.MethodPost)
	router.HandleFunc("/menus/{slug}", c.GetMenuBySlug).Methods(http.MethodGet)
	router.HandleFunc("/menus/{menu_id}", c.UpdateMenu).Methods(http.MethodPut)
	router.HandleFunc("/menus/{menu_id}", c.DeleteMenu).Methods(http.MethodDelete)
}
