package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithRequest(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestRequestAccessTokenPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	if got := requestAccessToken(contextWithRequest(req)); got != "cookie-token" {
		t.Fatalf("got %q", got)
	}
}

func TestRequestAccessTokenFallsBackToBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	if got := requestAccessToken(contextWithRequest(req)); got != "header-token" {
		t.Fatalf("got %q", got)
	}
}

func TestRequestAccessTokenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := requestAccessToken(contextWithRequest(req)); got != "" {
		t.Fatalf("got %q", got)
	}

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := requestAccessToken(contextWithRequest(req)); got != "" {
		t.Fatalf("non-bearer scheme: got %q", got)
	}
}
