// internal/wire/wire.go
package wire

import (
	"net/http"

	"flight-seating/internal/adaptor"
	"flight-seating/internal/data/entity"
	"flight-seating/internal/data/repository"
	"flight-seating/internal/usecase"
	"flight-seating/pkg/middleware"
	"flight-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds everything main needs to run a session
type App struct {
	Router *chi.Mux
	Menu   *adaptor.MenuHandler
}

// Wiring builds services and handlers around the loaded grid
func Wiring(repo *repository.Repository, grid *entity.Grid, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, grid, config.Seats)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
		Menu:   handler.Menu,
	}
}

// setupRouter configures the read-only status router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.ReadOnly(logger))

	wireSeat(r, handler.Seat)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
