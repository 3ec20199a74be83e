package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	database "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/config"
	controllers "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/controllers"
	middleware "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/middlewares"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/repository"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/routes"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	restaurantRepo := repository.NewRestaurantRepo(database.OpenCollection(database.Client, "restaurants"))
	customerRepo := repository.NewCustomerRepo(database.OpenCollection(database.Client, "customers"))
	etalaseRepo := repository.NewEtalaseRepo(database.OpenCollection(database.Client, "etalases"))
	menuRepo := repository.NewMenuRepo(database.OpenCollection(database.Client, "menus"))
	spicyLevelRepo := repository.NewSpicyLevelRepo(database.OpenCollection(database.Client, "spicy_levels"))
	reviewRepo := repository.NewReviewRepo(database.OpenCollection(database.Client, "reviews"), "customers")
	wishlistRepo := repository.NewWishlistRepo(database.OpenCollection(database.Client, "wishlists"), "menus", "restaurants")

	authController := controllers.NewAuthController(services.NewAuthService(customerRepo, restaurantRepo))
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(restaurantRepo))
	etalaseController := controllers.NewEtalaseController(services.NewEtalaseService(etalaseRepo, menuRepo))
	menuController := controllers.NewMenuController(services.NewMenuService(menuRepo, spicyLevelRepo, etalaseRepo, restaurantRepo))
	reviewController := controllers.NewReviewController(services.NewReviewService(reviewRepo, restaurantRepo))
	wishlistController := controllers.NewWishlistController(services.NewWishlistService(wishlistRepo, menuRepo))

	router := mux.NewRouter()
	router.Use(middleware.RequestLogging(logger))

	// Public routes (no authentication)
	routes.AuthRoutes(router, authController)
	routes.PublicRoutes(router, restaurantController, menuController, reviewController)

	// Restaurant-owner routes
	restaurantRouter := router.PathPrefix("/").Subrouter()
	restaurantRouter.Use(middleware.Authentication(models.RoleRestaurant))
	routes.EtalaseProtectedRoutes(restaurantRouter, etalaseController)
	routes.MenuProtectedRoutes(restaurantRouter, menuController)

	// Customer routes
	customerRouter := router.PathPrefix("/").Subrouter()
	customerRouter.Use(middleware.Authentication(models.RoleCustomer))
	routes.ReviewProtectedRoutes(customerRouter, reviewController)
	routes.WishlistProtectedRoutes(customerRouter, wishlistController)

	logger.Info().Str("port", port).Msg("server running")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
