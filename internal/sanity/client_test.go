package sanity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(base string) *Client {
	c := NewClient(&config.Config{
		SanityProjectID:  "testproj",
		SanityDataset:    "production",
		SanityAPIVersion: "2024-01-01",
		SanityToken:      "test-token",
		SanityTimeout:    5 * time.Second,
	})
	return c.WithBaseURL(base)
}

func TestClientQueryDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `*[_type == "project"]`, r.URL.Query().Get("query"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"_id":"p1","title":"Bridge Retrofit","slug":{"current":"bridge-retrofit"}}]}`))
	}))
	defer srv.Close()

	var projects []domain.Project
	err := testClient(srv.URL).Query(context.Background(), `*[_type == "project"]`, nil, &projects)

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Bridge Retrofit", projects[0].Title)
	assert.Equal(t, "bridge-retrofit", projects[0].Slug.Current)
}

func TestClientQueryEncodesParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Parameters travel JSON-encoded under $-prefixed keys.
		assert.Equal(t, `"bridge-retrofit"`, r.URL.Query().Get("$slug"))
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	var project domain.Project
	err := testClient(srv.URL).Query(context.Background(), QueryProjectBySlug, map[string]string{"slug": "bridge-retrofit"}, &project)
	require.NoError(t, err)
}

func TestClientQueryNullResultLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	var project domain.Project
	err := testClient(srv.URL).Query(context.Background(), QueryProjectBySlug, map[string]string{"slug": "gone"}, &project)

	require.NoError(t, err)
	assert.Empty(t, project.ID)
}

func TestClientQuerySurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"expected ']' following expression","type":"queryParseError"}}`))
	}))
	defer srv.Close()

	var out any
	err := testClient(srv.URL).Query(context.Background(), `*[broken`, nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected ']'")
}

func TestClientQueryAnonymousWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{
		SanityProjectID:  "testproj",
		SanityDataset:    "production",
		SanityAPIVersion: "2024-01-01",
		SanityTimeout:    5 * time.Second,
	}).WithBaseURL(srv.URL)

	var out []domain.Project
	require.NoError(t, c.Query(context.Background(), QueryAllProjects, nil, &out))
}
