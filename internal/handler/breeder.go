package handler

import (
	"errors"
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BreederHandler struct {
	svc *service.BreederService
}

func NewBreederHandler(svc *service.BreederService) *BreederHandler {
	return &BreederHandler{svc: svc}
}

// Create godoc
// @Summary Create a breeder
// @Tags breeders
// @Accept json
// @Produce json
// @Param request body model.BreederCreateRequest true "Breeder data"
// @Success 201 {object} model.Breeder
// @Failure 409 {object} model.ErrorResponse
// @Router /breeders [post]
func (h *BreederHandler) Create(c *gin.Context) {
	var req model.BreederCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	breeder, err := h.svc.CreateBreeder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "breeder code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusCreated, breeder)
}

// List godoc
// @Summary List breeders
// @Tags breeders
// @Produce json
// @Success 200 {array} model.Breeder
// @Router /breeders [get]
func (h *BreederHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	breeders, err := h.svc.ListBreeders(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, breeders)
}

// Search godoc
// @Summary Search breeders by name substring
// @Tags breeders
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {array} model.Breeder
// @Router /breeders/search/{name} [get]
func (h *BreederHandler) Search(c *gin.Context) {
	skip, limit := paginationParams(c)
	breeders, err := h.svc.SearchBreeders(c.Request.Context(), c.Param("name"), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, breeders)
}

// GetByCode godoc
// @Summary Get a breeder by code
// @Tags breeders
// @Produce json
// @Param breeder_code path string true "Breeder code"
// @Success 200 {object} model.Breeder
// @Failure 404 {object} model.ErrorResponse
// @Router /breeders/code/{breeder_code} [get]
func (h *BreederHandler) GetByCode(c *gin.Context) {
	breeder, err := h.svc.GetBreederByCode(c.Request.Context(), c.Param("breeder_code"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "breeder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, breeder)
}

// Stats godoc
// @Summary Breeder statistics
// @Tags breeders
// @Produce json
// @Success 200 {object} model.BreederStatsResponse
// @Router /breeders/stats/total [get]
func (h *BreederHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get godoc
// @Summary Get a breeder
// @Tags breeders
// @Produce json
// @Param breeder_id path int true "Breeder ID"
// @Success 200 {object} model.Breeder
// @Failure 404 {object} model.ErrorResponse
// @Router /breeders/{breeder_id} [get]
func (h *BreederHandler) Get(c *gin.Context) {
	breederID, ok := parseIDParam(c, "breeder_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breeder id"})
		return
	}

	breeder, err := h.svc.GetBreeder(c.Request.Context(), breederID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "breeder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, breeder)
}

// Update godoc
// @Summary Update a breeder
// @Tags breeders
// @Accept json
// @Produce json
// @Param breeder_id path int true "Breeder ID"
// @Param request body model.BreederUpdateRequest true "Fields to update"
// @Success 200 {object} model.Breeder
// @Failure 404 {object} model.ErrorResponse
// @Router /breeders/{breeder_id} [put]
func (h *BreederHandler) Update(c *gin.Context) {
	breederID, ok := parseIDParam(c, "breeder_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breeder id"})
		return
	}

	var req model.BreederUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	breeder, err := h.svc.UpdateBreeder(c.Request.Context(), breederID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "breeder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, breeder)
}

// Delete godoc
// @Summary Delete a breeder
// @Tags breeders
// @Produce json
// @Param breeder_id path int true "Breeder ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /breeders/{breeder_id} [delete]
func (h *BreederHandler) Delete(c *gin.Context) {
	breederID, ok := parseIDParam(c, "breeder_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breeder id"})
		return
	}

	deleted, err := h.svc.DeleteBreeder(c.Request.Context(), breederID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "breeder not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "breeder deleted"})
}
