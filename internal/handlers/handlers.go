package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/config"
	"github.com/Francobelbruno/Portafolio/internal/middleware"
	"github.com/Francobelbruno/Portafolio/internal/render"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projectService *services.ProjectService) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	contactService := services.NewContactService(cfg.Contact.Recipient)

	// Initialize handlers
	site := render.Site{Title: cfg.Site.Title, Tagline: cfg.Site.Tagline}
	pageHandler := NewPageHandler(projectService, site)
	projectHandler := NewProjectHandler(projectService)
	contactHandler := NewContactHandler(contactService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects/reload", projectHandler.ReloadProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Contact
		r.Post("/contact", contactHandler.SubmitJSON)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Post("/contact", contactHandler.SubmitForm)

	// Static files
	if cfg.Site.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.Site.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
