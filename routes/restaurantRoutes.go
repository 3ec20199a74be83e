package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
	middleware "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/middlewares"
)

// PublicRoutes are the customer-facing reads. The review listing resolves an
// optional caller identity so an authenticated customer sees their own review
// split out.
func PublicRoutes(router *mux.Router, restaurant *controllers.RestaurantController, menu *controllers.MenuController, review *controllers.ReviewController) {
	router.HandleFunc("/restaurants/{username}", restaurant.GetRestaurantProfile).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/{username}/menus", menu.BrowseRestaurantMenus).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/{username}/menus/{slug}", menu.BrowseMenuBySlug).Methods(http.MethodGet)
	router.Handle("/restaurants/{username}/reviews",
		middleware.OptionalAuthentication(http.HandlerFunc(review.GetRestaurantReviews))).Methods(http.MethodGet)
}
