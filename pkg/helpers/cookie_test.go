package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCookieSetToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewCookie("auth_token", "example.com", true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	m.SetToken(c, "the-token", time.Now().Add(time.Hour))

	res := w.Result()
	defer func() { _ = res.Body.Close() }()
	ck := findCookie(res, "auth_token")
	require.NotNil(t, ck)
	assert.Equal(t, "the-token", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	assert.InDelta(t, 3600, ck.MaxAge, 5)
}

func TestCookieClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewCookie("auth_token", "", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	m.Clear(c)

	res := w.Result()
	defer func() { _ = res.Body.Close() }()
	ck := findCookie(res, "auth_token")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Less(t, ck.MaxAge, 0)
}

func TestCookieMaxAgeFromPastExpiry(t *testing.T) {
	assert.Equal(t, 0, maxAgeFrom(time.Now().Add(-time.Minute)))
}
