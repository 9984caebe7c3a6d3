package handler

import (
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc   *service.AdminService
	users *service.UserService
}

func NewAdminHandler(svc *service.AdminService, users *service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc, users: users}
}

// Stats godoc
// @Summary System-wide counters
// @Tags admin
// @Produce json
// @Success 200 {object} service.SystemStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.SystemStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List all users, including disabled ones
// @Tags admin
// @Produce json
// @Success 200 {array} model.UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	skip, limit := paginationParams(c)
	users, err := h.users.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

// DisableUser godoc
// @Summary Disable a user account
// @Description A disabled user keeps their rows but can no longer log in.
// @Tags admin
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/users/{user_id}/disable [post]
func (h *AdminHandler) DisableUser(c *gin.Context) {
	h.setDisabled(c, true)
}

// EnableUser godoc
// @Summary Re-enable a disabled user account
// @Tags admin
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/users/{user_id}/enable [post]
func (h *AdminHandler) EnableUser(c *gin.Context) {
	h.setDisabled(c, false)
}

func (h *AdminHandler) setDisabled(c *gin.Context, disabled bool) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.users.SetUserDisabled(c.Request.Context(), userID, disabled)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}

// RedisInfo godoc
// @Summary Raw Redis INFO output
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/redis/info [get]
func (h *AdminHandler) RedisInfo(c *gin.Context) {
	info, err := h.svc.RedisInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "redis unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": info})
}

// CacheStats godoc
// @Summary Cache key count and reachability
// @Tags admin
// @Produce json
// @Success 200 {object} service.CacheStats
// @Router /admin/cache/stats [get]
func (h *AdminHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CacheStats(c.Request.Context()))
}

// FlushCache godoc
// @Summary Flush the generic cache namespace
// @Description Removes cached query results only. Token revocation entries are untouched.
// @Tags admin
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /admin/cache/flush [post]
func (h *AdminHandler) FlushCache(c *gin.Context) {
	removed, ok := h.svc.FlushCache(c.Request.Context())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "redis unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache flushed", "keys_removed": removed})
}

// Health godoc
// @Summary Detailed health of database and Redis
// @Tags admin
// @Produce json
// @Success 200 {object} service.DetailedHealth
// @Router /admin/health [get]
func (h *AdminHandler) Health(c *gin.Context) {
	health := h.svc.Health(c.Request.Context())
	status := http.StatusOK
	if health.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
