package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := session.Middleware(sessions.NewCookieStore([]byte("test-secret")))
	handler := mw(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))
	return c, rec
}

func TestFlashRoundTrip(t *testing.T) {
	c, _ := flashTestContext(t)

	SetFlashSuccess(c, "Message sent.")
	SetFlashError(c, "Something failed.")

	data := GetFlashData(c)
	assert.Equal(t, []string{"Message sent."}, data.Success)
	assert.Equal(t, []string{"Something failed."}, data.Error)

	// Reading consumes the messages.
	again := GetFlashData(c)
	assert.Empty(t, again.Success)
	assert.Empty(t, again.Error)
}

func TestGetFlashDataEmptySession(t *testing.T) {
	c, _ := flashTestContext(t)

	data := GetFlashData(c)
	assert.Empty(t, data.Success)
	assert.Empty(t, data.Error)
}
