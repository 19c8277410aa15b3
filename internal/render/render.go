// Package render builds the portfolio page from the project gallery.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Francobelbruno/Portafolio/internal/models"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Gallery views
const (
	ViewLoading = "loading"
	ViewError   = "error"
	ViewEmpty   = "empty"
	ViewCards   = "cards"
)

// Site is the page identity
type Site struct {
	Title   string
	Tagline string
}

// NavLink is an in-page navigation anchor
type NavLink struct {
	Href  string
	Label string
}

// FilterButton is one category toggle
type FilterButton struct {
	Value  models.Category
	Label  string
	Active bool
}

// Page holds everything the template needs
type Page struct {
	Site         Site
	Nav          []NavLink
	Filters      []FilterButton
	View         string
	ErrorMessage string
	ProfileURL   string
	Cards        []models.Card
	Notice       *services.Notification
}

var navLinks = []NavLink{
	{Href: "#home", Label: "Home"},
	{Href: "#about", Label: "About"},
	{Href: "#projects", Label: "Projects"},
	{Href: "#contact", Label: "Contact"},
}

var filterLabels = map[models.Category]string{
	models.CategoryAll:       "All",
	models.CategoryReact:     "React",
	models.CategoryJava:      "Java",
	models.CategoryPython:    "Python",
	models.CategoryFullstack: "Full Stack",
	models.CategoryOther:     "Other",
}

// NewPage picks the gallery view for a service snapshot. A failed load shows
// the error view even when an older gallery is still held.
func NewPage(site Site, account string, snap services.Snapshot, filter models.Category) *Page {
	page := &Page{
		Site:       site,
		Nav:        navLinks,
		Filters:    filterButtons(filter),
		ProfileURL: "https://github.com/" + account,
	}

	switch {
	case snap.State == services.StateFailure:
		page.View = ViewError
		page.ErrorMessage = services.UserMessage(snap.Err)
	case snap.Gallery != nil && len(snap.Gallery.Projects) == 0:
		page.View = ViewEmpty
	case snap.Gallery != nil:
		page.View = ViewCards
		page.Cards = services.ApplyFilter(snap.Cards(), filter)
	default:
		page.View = ViewLoading
	}
	return page
}

func filterButtons(active models.Category) []FilterButton {
	values := append([]models.Category{models.CategoryAll}, models.Categories...)
	buttons := make([]FilterButton, 0, len(values))
	for _, v := range values {
		buttons = append(buttons, FilterButton{
			Value:  v,
			Label:  filterLabels[v],
			Active: strings.EqualFold(string(v), string(active)),
		})
	}
	return buttons
}

// Write renders the page as HTML
func Write(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
