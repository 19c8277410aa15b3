package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francobelbruno/Portafolio/internal/app"
	"github.com/Francobelbruno/Portafolio/internal/config"
	"github.com/Francobelbruno/Portafolio/internal/handlers"
	"github.com/Francobelbruno/Portafolio/internal/models"
	"github.com/Francobelbruno/Portafolio/internal/services"
)

const reposBody = `[
	{"id": 1, "name": "react-shop", "description": "Online shop", "language": "TypeScript",
	 "stargazers_count": 2, "forks_count": 0, "html_url": "https://github.com/alice/react-shop",
	 "homepage": "", "topics": ["react"], "updated_at": "2024-01-01T00:00:00Z", "fork": false},
	{"id": 2, "name": "data_tools", "description": "Python scripts", "language": "Python",
	 "stargazers_count": 1, "forks_count": 1, "html_url": "https://github.com/alice/data_tools",
	 "homepage": "https://tools.example.com", "updated_at": "2024-06-01T00:00:00Z", "fork": false}
]`

type fakeGitHub struct {
	status atomic.Int32
	body   atomic.Value
}

func newFakeGitHub(t *testing.T, status int, body string) *fakeGitHub {
	t.Helper()

	f := &fakeGitHub{}
	f.set(status, body)
	return f
}

func (f *fakeGitHub) set(status int, body string) {
	f.status.Store(int32(status))
	f.body.Store(body)
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(int(f.status.Load()))
	_, _ = w.Write([]byte(f.body.Load().(string)))
}

type testApp struct {
	router   http.Handler
	projects *services.ProjectService
	github   *fakeGitHub
}

func newTestApp(t *testing.T, status int, body string, load bool) *testApp {
	t.Helper()

	gh := newFakeGitHub(t, status, body)
	server := httptest.NewServer(gh)
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Account = "alice"
	cfg.GitHub.BaseURL = server.URL
	cfg.Contact.Recipient = "alice@example.com"
	cfg.Site.StaticDir = ""

	ps, err := app.NewProjectService(cfg)
	require.NoError(t, err)
	if load {
		_, _ = ps.Reload(context.Background())
	}

	return &testApp{router: handlers.SetupRoutes(cfg, ps), projects: ps, github: gh}
}

func (a *testApp) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	// given
	a := newTestApp(t, http.StatusOK, `[]`, false)

	// when
	rec := a.do(http.MethodGet, "/api/health", "", "")

	// then
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	t.Run("should render project cards newest first", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)

		// when
		rec := a.do(http.MethodGet, "/", "", "")

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		html := rec.Body.String()
		assert.Contains(t, html, `id="projects-container"`)
		assert.Less(t, strings.Index(html, "Data Tools"), strings.Index(html, "React Shop"))
		assert.Contains(t, html, "https://tools.example.com")
		assert.Contains(t, html, "https://alice.github.io/react-shop/")
	})

	t.Run("should show the rate limit hint when the API refuses", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusForbidden, `{"message":"API rate limit exceeded"}`, true)

		// when
		rec := a.do(http.MethodGet, "/", "", "")

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		html := rec.Body.String()
		assert.Contains(t, html, services.RateLimitMessage)
		assert.NotContains(t, html, services.GenericMessage)
		assert.Contains(t, html, "https://github.com/alice")
	})

	t.Run("should show the generic message for other failures", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusInternalServerError, `oops`, true)

		// when
		rec := a.do(http.MethodGet, "/", "", "")

		// then
		assert.Contains(t, rec.Body.String(), services.GenericMessage)
	})

	t.Run("should show the empty view for a non-array body", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `{"message":"Not Found"}`, true)

		// when
		rec := a.do(http.MethodGet, "/", "", "")

		// then
		html := rec.Body.String()
		assert.Contains(t, html, `class="no-projects"`)
		assert.NotContains(t, html, `class="error-message"`)
	})

	t.Run("should hide cards outside the selected filter", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)

		// when
		rec := a.do(http.MethodGet, "/?filter=Python", "", "")

		// then
		html := rec.Body.String()
		assert.Contains(t, html, `class="project-card animate-on-scroll hidden" data-category="react"`)
		assert.Contains(t, html, `class="project-card animate-on-scroll" data-category="python"`)
	})

	t.Run("should show a notice for an incomplete contact form", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, true)

		// when
		rec := a.do(http.MethodGet, "/?notice=incomplete", "", "")

		// then
		assert.Contains(t, rec.Body.String(), "notification-info")
	})
}

func TestProjectsAPI(t *testing.T) {
	t.Parallel()

	t.Run("should be unavailable before the first load", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, false)

		// when
		rec := a.do(http.MethodGet, "/api/projects", "", "")

		// then
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should report the user message after a failed first load", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusForbidden, `{"message":"API rate limit exceeded"}`, true)

		// when
		rec := a.do(http.MethodGet, "/api/projects", "", "")

		// then
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "rate limit")
	})

	t.Run("should list cards filtered by category", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)

		// when
		all := a.do(http.MethodGet, "/api/projects", "", "")
		react := a.do(http.MethodGet, "/api/projects?category=react", "", "")

		// then
		require.Equal(t, http.StatusOK, all.Code)
		var allCards, reactCards []models.Card
		require.NoError(t, json.Unmarshal(all.Body.Bytes(), &allCards))
		require.NoError(t, json.Unmarshal(react.Body.Bytes(), &reactCards))
		require.Len(t, allCards, 2)
		assert.Equal(t, "data_tools", allCards[0].Name)
		assert.Equal(t, models.CategoryPython, allCards[0].Category)
		require.Len(t, reactCards, 1)
		assert.Equal(t, "React Shop", reactCards[0].DisplayName)
	})

	t.Run("should get a single project", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)

		// when
		found := a.do(http.MethodGet, "/api/projects/2", "", "")
		missing := a.do(http.MethodGet, "/api/projects/3", "", "")
		invalid := a.do(http.MethodGet, "/api/projects/abc", "", "")

		// then
		assert.Equal(t, http.StatusOK, found.Code)
		assert.Contains(t, found.Body.String(), `"name":"data_tools"`)
		assert.Equal(t, http.StatusNotFound, missing.Code)
		assert.Equal(t, http.StatusBadRequest, invalid.Code)
	})

	t.Run("should keep the gallery when a reload fails", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)
		a.github.set(http.StatusBadGateway, `{"message":"Server Error"}`)

		// when
		reload := a.do(http.MethodPost, "/api/projects/reload", "", "")
		list := a.do(http.MethodGet, "/api/projects", "", "")

		// then
		assert.Equal(t, http.StatusBadGateway, reload.Code)
		assert.Contains(t, reload.Body.String(), services.GenericMessage)
		assert.Equal(t, http.StatusOK, list.Code)
		assert.Equal(t, services.StateFailure, a.projects.Snapshot().State)
	})

	t.Run("should render the error view after a failed reload", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, reposBody, true)
		a.github.set(http.StatusForbidden, `{"message":"API rate limit exceeded"}`)
		reload := a.do(http.MethodPost, "/api/projects/reload", "", "")
		require.Equal(t, http.StatusBadGateway, reload.Code)

		// when
		rec := a.do(http.MethodGet, "/", "", "")

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		html := rec.Body.String()
		assert.Contains(t, html, `class="error-message"`)
		assert.Contains(t, html, "rate limit")
		assert.NotContains(t, html, `class="project-card`)
		assert.Len(t, a.projects.GetAll(), 2)
	})

	t.Run("should replace the gallery on a successful reload", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, true)
		a.github.set(http.StatusOK, reposBody)

		// when
		reload := a.do(http.MethodPost, "/api/projects/reload", "", "")

		// then
		require.Equal(t, http.StatusOK, reload.Code)
		assert.Contains(t, reload.Body.String(), `"count":2`)
		assert.Len(t, a.projects.GetAll(), 2)
	})
}

func TestContact(t *testing.T) {
	t.Parallel()

	t.Run("should return a mailto link for a JSON submission", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, false)
		body := `{"name":"Bob","email":"bob@example.com","message":"Hello"}`

		// when
		rec := a.do(http.MethodPost, "/api/contact", body, "application/json")

		// then
		require.Equal(t, http.StatusOK, rec.Code)
		var result services.ContactResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, strings.HasPrefix(result.Mailto, "mailto:alice@example.com?subject="))
		assert.Equal(t, "success", result.Notification.Type)
	})

	t.Run("should reject an incomplete JSON submission", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, false)

		// when
		incomplete := a.do(http.MethodPost, "/api/contact", `{"name":"Bob"}`, "application/json")
		malformed := a.do(http.MethodPost, "/api/contact", `{`, "application/json")

		// then
		assert.Equal(t, http.StatusBadRequest, incomplete.Code)
		assert.Equal(t, http.StatusBadRequest, malformed.Code)
	})

	t.Run("should redirect a form submission to the mail client", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, false)
		form := url.Values{"name": {"Bob"}, "email": {"bob@example.com"}, "message": {"Hi"}}

		// when
		rec := a.do(http.MethodPost, "/contact", form.Encode(), "application/x-www-form-urlencoded")

		// then
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "mailto:alice@example.com?"))
	})

	t.Run("should send an incomplete form back to the page", func(t *testing.T) {
		t.Parallel()

		// given
		a := newTestApp(t, http.StatusOK, `[]`, false)
		form := url.Values{"name": {"Bob"}}

		// when
		rec := a.do(http.MethodPost, "/contact", form.Encode(), "application/x-www-form-urlencoded")

		// then
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?notice=incomplete#contact", rec.Header().Get("Location"))
	})
}
