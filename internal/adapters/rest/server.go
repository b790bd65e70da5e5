package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(serverPort string,
	allowedOrigins []string,
	propertyHandler *PropertyHandler,
	savedHandler *SavedHandler,
	baseLogger port.LoggerPort) *Server {

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + serverPort,
			Handler: NewRouter(allowedOrigins, propertyHandler, savedHandler, baseLogger),
		},
		logger: baseLogger,
	}
}

// NewRouter собирает маршруты и middleware.
func NewRouter(allowedOrigins []string,
	propertyHandler *PropertyHandler,
	savedHandler *SavedHandler,
	baseLogger port.LoggerPort) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/properties", propertyHandler.FindProperties)
		r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)
		r.Get("/filters/options", propertyHandler.GetFilterOptions)

		r.Route("/saved", func(r chi.Router) {
			r.Get("/", savedHandler.GetSaved)
			r.Post("/", savedHandler.SaveProperty)
			r.Delete("/", savedHandler.ClearSaved)
			r.Put("/{propertyID}", savedHandler.UpdateNotes)
			r.Delete("/{propertyID}", savedHandler.RemoveSaved)
			r.Post("/{propertyID}/toggle", savedHandler.ToggleSaved)
		})
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
