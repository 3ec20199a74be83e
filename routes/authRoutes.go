package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
)

func AuthRoutes(router *mux.Router, c *controllers.AuthController) {
	router.HandleFunc("/auth/customer/signup", c.CustomerSignUp).Methods(http.MethodPost)
	router.HandleFunc("/auth/customer/login", c.CustomerLogin).Methods(http.MethodPost)
	router.HandleFunc("/auth/restaurant/signup", c.RestaurantSignUp).Methods(http.MethodPost)
	router.HandleFunc("/auth/restaurant/login", c.RestaurantLogin).Methods(http.MethodPost)
}
