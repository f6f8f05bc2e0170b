package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/content"
	"github.com/fikanova/portfolio/internal/sanity"
	"github.com/fikanova/portfolio/internal/storage"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveSource serves canned JSON per query, like the resolver tests' fake.
type liveSource struct {
	payloads map[string]string
}

func (l liveSource) Query(ctx context.Context, groq string, params map[string]string, out any) error {
	raw, ok := l.payloads[groq]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

func newPageTestServer(t *testing.T, source content.Source) *echo.Echo {
	t.Helper()

	site, err := config.LoadSite(t.TempDir())
	require.NoError(t, err)

	images := sanity.NewClient(&config.Config{
		SanityProjectID:  "testproj",
		SanityDataset:    "production",
		SanityAPIVersion: "2024-01-01",
		SanityTimeout:    time.Second,
	})

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "BO_CV.pdf", []byte("%PDF-1.4 test"), 0o644))

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	h := NewPageHandler(content.NewResolver(source, 0), images, site, storage.NewAferoStore(fs))
	e.GET("/", h.HomeGet)
	e.GET("/about", h.AboutGet)
	e.GET("/projects", h.ProjectsGet)
	e.GET("/projects/:slug", h.ProjectDetailGet)
	e.GET("/experience", h.ExperienceGet)
	e.GET("/services", h.ServicesGet)
	e.GET("/cv", h.CVGet)
	e.RouteNotFound("/*", h.NotFoundGet)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPagesDegradeToFallbackContent(t *testing.T) {
	// Every query fails; each page must still render complete fallback data.
	e := newPageTestServer(t, deadSource{})

	t.Run("home", func(t *testing.T) {
		rec := get(e, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bruce Odhiambo")
	})

	t.Run("about", func(t *testing.T) {
		rec := get(e, "/about")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Construction Manager")
		assert.Contains(t, body, "University of Nairobi")
	})

	t.Run("projects", func(t *testing.T) {
		rec := get(e, "/projects")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "J365 Rugby Mentorship")
	})

	t.Run("project detail from the fallback dataset", func(t *testing.T) {
		rec := get(e, "/projects/j365-rugby")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "J365 Rugby Mentorship")
	})

	t.Run("experience", func(t *testing.T) {
		rec := get(e, "/experience")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sustain East Africa")
	})

	t.Run("services", func(t *testing.T) {
		rec := get(e, "/services")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GIS &amp; Spatial Intelligence")
	})
}

func TestProjectDetailUnknownSlugRendersNotFoundPage(t *testing.T) {
	e := newPageTestServer(t, liveSource{})

	rec := get(e, "/projects/no-such-project")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "404")
	assert.Contains(t, body, "no longer published")
}

func TestUnroutablePathRendersNotFoundPage(t *testing.T) {
	e := newPageTestServer(t, liveSource{})

	rec := get(e, "/definitely/not/a/page")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestCVGet(t *testing.T) {
	t.Run("live document URL redirects", func(t *testing.T) {
		e := newPageTestServer(t, liveSource{payloads: map[string]string{
			sanity.QueryProfile: `{"name":"Live","cvFile":"https://cdn.sanity.io/files/testproj/production/cv.pdf"}`,
		}})

		rec := get(e, "/cv")
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://cdn.sanity.io/files/testproj/production/cv.pdf", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("fallback streams the bundled PDF", func(t *testing.T) {
		e := newPageTestServer(t, deadSource{})

		rec := get(e, "/cv")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "%PDF-1.4 test")
	})
}

func TestProjectDetailRendersLiveContent(t *testing.T) {
	e := newPageTestServer(t, liveSource{payloads: map[string]string{
		sanity.QueryProjectBySlug: `{
			"_id":"p1",
			"title":"Bridge Retrofit",
			"slug":{"current":"bridge-retrofit"},
			"category":"construction",
			"clientName":"County Works",
			"challenge":"Aging structure with live traffic.",
			"solution":"Phased night works.",
			"impact":["Zero downtime"],
			"coverImage":{"asset":{"_ref":"image-abc123-800x600-jpg"}}
		}`,
	}})

	rec := get(e, "/projects/bridge-retrofit")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Bridge Retrofit")
	assert.Contains(t, body, "County Works")
	assert.Contains(t, body, "Zero downtime")
	assert.Contains(t, body, "cdn.sanity.io/images/testproj/production/abc123-800x600.jpg")
}
