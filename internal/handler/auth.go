package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc     *service.AuthService
	cookies CookieSettings
}

func NewAuthHandler(svc *service.AuthService, cookies CookieSettings) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies}
}

// Login godoc
// @Summary Login with username or email
// @Description Sets access and refresh tokens as HttpOnly cookies. remember_me extends the refresh token to the 30-day tier.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.UsernameOrEmail, req.Password, req.RememberMe)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	h.setPairCookies(c, pair)
	c.JSON(http.StatusOK, model.TokenResponse{
		Message: "Login successful",
		UserID:  pair.UserID,
		Email:   pair.Email,
	})
}

// Refresh godoc
// @Summary Refresh the token pair
// @Description Mints a new access and refresh token from the refresh_token cookie. The remember_me preference is sticky.
// @Tags auth
// @Produce json
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookieName)

	pair, err := h.svc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	h.setPairCookies(c, pair)
	c.JSON(http.StatusOK, model.TokenResponse{
		Message: "Token refreshed successfully",
		UserID:  pair.UserID,
		Email:   pair.Email,
	})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the access token (best-effort) and clears both cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := requestAccessToken(c); token != "" {
		h.svc.Logout(c.Request.Context(), token)
	}
	h.cookies.clearAuthCookies(c)
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Successfully logged out"})
}

// Me godoc
// @Summary Current user identity
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthMeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.AuthMeResponse{
		UserID:        user.ID,
		Email:         user.Email,
		Authenticated: true,
	})
}

func (h *AuthHandler) setPairCookies(c *gin.Context, pair *service.TokenPair) {
	refreshMaxAge := 0
	if pair.RememberMe {
		refreshMaxAge = int(h.svc.Tokens().RememberMeTTL() / time.Second)
	}
	h.cookies.setAuthCookies(c, pair.AccessToken, pair.RefreshToken, refreshMaxAge)
}

// writeAuthError maps the auth error taxonomy onto the fixed set of external
// responses. Expired, revoked and malformed tokens all read the same from
// outside; the distinction only reaches the log.
func writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email/username or password"})
	case errors.Is(err, service.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "user is disabled"})
	case errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrTokenRevoked), errors.Is(err, service.ErrInvalidToken):
		log.Printf("auth: rejected token: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	default:
		log.Printf("auth: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
