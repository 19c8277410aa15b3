package handlers

import (
	"bytes"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/models"
	"github.com/Francobelbruno/Portafolio/internal/render"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

// PageHandler serves the rendered portfolio page
type PageHandler struct {
	projectService *services.ProjectService
	site           render.Site
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, site render.Site) *PageHandler {
	return &PageHandler{projectService: ps, site: site}
}

// Index handles GET /?filter=
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	filter := models.ParseFilter(r.URL.Query().Get("filter"))
	page := render.NewPage(h.site, h.projectService.Account(), h.projectService.Snapshot(), filter)

	if r.URL.Query().Get("notice") == noticeIncomplete {
		page.Notice = &services.Notification{
			Type:       "info",
			Message:    "Please fill in your name, email and message.",
			DurationMs: services.NotificationDuration.Milliseconds(),
		}
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, page); err != nil {
		logger.Errorf("Error rendering page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
