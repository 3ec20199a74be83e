package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
)

func WishlistProtectedRoutes(router *mux.Router, c *controllers.WishlistController) {
	router.HandleFunc("/wishlist", c.GetWishlist).Methods(http.MethodGet)
	router.HandleFunc("/wishlist/{menu_id}", c.CheckWishlist).Methods(http.MethodGet)
	router.HandleFunc("/wishlist/{menu_id}", c.AddWishlist).Methods(http.MethodPost)
	router.HandleFunc("/wishlist/{menu_id}", c.RemoveWishlist).Methods(http.MethodDelete)
}
