package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"GOTRIP_BACK-END/internal/config"
	"GOTRIP_BACK-END/internal/handlers"
	"GOTRIP_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	usersHandler *handlers.UsersHandler,
	destinationsHandler *handlers.DestinationsHandler,
	bookingsHandler *handlers.BookingsHandler,
	healthHandler *handlers.HealthHandler,
) *http.ServeMux {
	mux := http.NewServeMux()
	jwtCfg := &cfg.JWT

	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// User routes
	mux.HandleFunc("/users/register", usersHandler.Register)
	mux.HandleFunc("/users/login", usersHandler.Login)
	mux.HandleFunc("/users/change-password", middleware.AuthMiddleware(usersHandler.ChangePassword, jwtCfg))
	mux.HandleFunc("/users/profile", middleware.AuthMiddleware(usersHandler.Profile, jwtCfg))

	// Destination catalog; the subtree pattern also serves
	// /destination/{id} and /destination/{id}/reviews
	mux.HandleFunc("/destination", middleware.AuthMiddleware(destinationsHandler.Destinations, jwtCfg))
	mux.HandleFunc("/destination/", middleware.AuthMiddleware(destinationsHandler.Destinations, jwtCfg))

	// Booking ledger
	mux.HandleFunc("/bookings/", middleware.AuthMiddleware(bookingsHandler.Bookings, jwtCfg))

	// API documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
