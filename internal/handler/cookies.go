package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/birdband/backend/internal/config"
	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// CookieSettings is the transport half of the token lifecycle: the auth core
// only produces token strings, this layer decides how they live in cookies.
type CookieSettings struct {
	Secure        bool
	SameSite      http.SameSite
	Domain        string
	AccessMaxAge  int
	RefreshMaxAge int
}

func NewCookieSettings(cfg config.AuthConfig) (CookieSettings, error) {
	secure, err := strconv.ParseBool(cfg.CookieSecure)
	if err != nil {
		return CookieSettings{}, fmt.Errorf("invalid SECURE_COOKIE: %w", err)
	}

	sameSite, err := parseSameSite(cfg.CookieSameSite)
	if err != nil {
		return CookieSettings{}, err
	}
	if sameSite == http.SameSiteNoneMode && !secure {
		return CookieSettings{}, fmt.Errorf("SameSite=None requires Secure cookie")
	}

	accessMaxAge, err := strconv.Atoi(cfg.AccessCookieMaxAge)
	if err != nil {
		return CookieSettings{}, fmt.Errorf("invalid ACCESS_COOKIE_MAX_AGE: %w", err)
	}
	refreshMaxAge, err := strconv.Atoi(cfg.RefreshCookieMaxAge)
	if err != nil {
		return CookieSettings{}, fmt.Errorf("invalid REFRESH_COOKIE_MAX_AGE: %w", err)
	}

	return CookieSettings{
		Secure:        secure,
		SameSite:      sameSite,
		Domain:        cfg.CookieDomain,
		AccessMaxAge:  accessMaxAge,
		RefreshMaxAge: refreshMaxAge,
	}, nil
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("invalid COOKIE_SAMESITE %q", value)
	}
}

func (cs CookieSettings) setAuthCookies(c *gin.Context, accessToken, refreshToken string, refreshMaxAge int) {
	if refreshMaxAge <= 0 {
		refreshMaxAge = cs.RefreshMaxAge
	}
	c.SetSameSite(cs.SameSite)
	c.SetCookie(accessCookieName, accessToken, cs.AccessMaxAge, "/", cs.Domain, cs.Secure, true)
	c.SetCookie(refreshCookieName, refreshToken, refreshMaxAge, "/", cs.Domain, cs.Secure, true)
}

func (cs CookieSettings) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(cs.SameSite)
	c.SetCookie(accessCookieName, "", -1, "/", cs.Domain, cs.Secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", cs.Domain, cs.Secure, true)
}
