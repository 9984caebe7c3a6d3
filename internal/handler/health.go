package handler

import (
	"net/http"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	repo  *db.Postgres
	store cache.Store
}

func NewHealthHandler(repo *db.Postgres, store cache.Store) *HealthHandler {
	return &HealthHandler{repo: repo, store: store}
}

// Root godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.MessageResponse{Message: "bird band registry API"})
}

// Health godoc
// @Summary Combined component health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthAllResponse
// @Failure 503 {object} model.HealthAllResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	out := model.HealthAllResponse{
		Status:   "ok",
		Database: model.HealthResponse{Status: "ok", Service: "postgres"},
		Redis:    model.HealthResponse{Status: "ok", Service: "redis"},
	}

	if err := h.repo.Ping(c.Request.Context()); err != nil {
		out.Status = "error"
		out.Database = model.HealthResponse{Status: "error", Service: "postgres", Message: err.Error()}
	}
	if err := h.store.Ping(c.Request.Context()); err != nil {
		out.Status = "error"
		out.Redis = model.HealthResponse{Status: "error", Service: "redis", Message: err.Error()}
	}

	status := http.StatusOK
	if out.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, out)
}

// HealthDB godoc
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health/db [get]
func (h *HealthHandler) HealthDB(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{
			Status:  "error",
			Service: "postgres",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Service: "postgres"})
}

// HealthRedis godoc
// @Summary Redis health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health/redis [get]
func (h *HealthHandler) HealthRedis(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{
			Status:  "error",
			Service: "redis",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Service: "redis"})
}
