package handler

import (
	"net/http"
	"testing"

	"github.com/birdband/backend/internal/config"
)

func baseAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		CookieSecure:        "false",
		CookieSameSite:      "lax",
		AccessCookieMaxAge:  "900",
		RefreshCookieMaxAge: "604800",
	}
}

func TestNewCookieSettings(t *testing.T) {
	cs, err := NewCookieSettings(baseAuthConfig())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if cs.Secure || cs.SameSite != http.SameSiteLaxMode {
		t.Fatalf("settings: %+v", cs)
	}
	if cs.AccessMaxAge != 900 || cs.RefreshMaxAge != 604800 {
		t.Fatalf("max ages: %+v", cs)
	}
}

func TestParseSameSite(t *testing.T) {
	cases := []struct {
		in   string
		want http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"Lax", http.SameSiteLaxMode},
		{"", http.SameSiteLaxMode},
		{"strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{" NONE ", http.SameSiteNoneMode},
	}
	for _, tc := range cases {
		got, err := parseSameSite(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("parseSameSite(%q) = (%v, %v), want %v", tc.in, got, err, tc.want)
		}
	}

	if _, err := parseSameSite("sideways"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestSameSiteNoneRequiresSecure(t *testing.T) {
	cfg := baseAuthConfig()
	cfg.CookieSameSite = "none"
	if _, err := NewCookieSettings(cfg); err == nil {
		t.Fatalf("SameSite=None without Secure accepted")
	}

	cfg.CookieSecure = "true"
	cs, err := NewCookieSettings(cfg)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !cs.Secure || cs.SameSite != http.SameSiteNoneMode {
		t.Fatalf("settings: %+v", cs)
	}
}

func TestNewCookieSettingsRejectsBadValues(t *testing.T) {
	cfg := baseAuthConfig()
	cfg.CookieSecure = "maybe"
	if _, err := NewCookieSettings(cfg); err == nil {
		t.Fatalf("bad SECURE_COOKIE accepted")
	}

	cfg = baseAuthConfig()
	cfg.AccessCookieMaxAge = "soon"
	if _, err := NewCookieSettings(cfg); err == nil {
		t.Fatalf("bad ACCESS_COOKIE_MAX_AGE accepted")
	}
}
