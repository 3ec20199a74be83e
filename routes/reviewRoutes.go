package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
)

func ReviewProtectedRoutes(router *mux.Router, c *controllers.ReviewController) {
	router.HandleFunc("/restaurants/{username}/reviews", c.CreateReview).Methods(http.MethodPost)
	router.HandleFunc("/restaurants/{username}/reviews/{review_id}", c.UpdateReview).Methods(http.MethodPut)
	router.HandleFunc("/restaurants/{username}/reviews/{review_id}", c.DeleteReview).Methods(http.MethodDelete)
}
