package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Francobelbruno/Portafolio/internal/models"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects?category=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	snap := h.projectService.Snapshot()
	if snap.Gallery == nil {
		if snap.State == services.StateFailure {
			respondError(w, http.StatusServiceUnavailable, services.UserMessage(snap.Err))
			return
		}
		respondError(w, http.StatusServiceUnavailable, "Projects are still loading")
		return
	}

	filter := models.ParseFilter(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, services.VisibleCards(snap.Cards(), filter))
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ReloadProjects handles POST /api/projects/reload
func (h *ProjectHandler) ReloadProjects(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.projectService.Reload(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, services.UserMessage(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"account":   gallery.Account,
		"count":     len(gallery.Projects),
		"loaded_at": gallery.LoadedAt,
	})
}
