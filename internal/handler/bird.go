package handler

import (
	"errors"
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BirdHandler struct {
	svc *service.BirdService
}

func NewBirdHandler(svc *service.BirdService) *BirdHandler {
	return &BirdHandler{svc: svc}
}

// Create godoc
// @Summary Create a bird
// @Description band_id is generated as breeder_code-YYYY-NN when omitted; missing parent birds referenced by band ID are created automatically.
// @Tags birds
// @Accept json
// @Produce json
// @Param request body model.BirdCreateRequest true "Bird data"
// @Success 201 {object} model.Bird
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /birds [post]
func (h *BirdHandler) Create(c *gin.Context) {
	var req model.BirdCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bird, err := h.svc.CreateBird(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "band ID already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, bird)
}

// List godoc
// @Summary List birds
// @Tags birds
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Bird
// @Router /birds [get]
func (h *BirdHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	birds, err := h.svc.ListBirds(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, birds)
}

// Stats godoc
// @Summary Bird statistics
// @Tags birds
// @Produce json
// @Success 200 {object} model.BirdStatsResponse
// @Router /birds/stats/total [get]
func (h *BirdHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListByBreeder godoc
// @Summary Birds of a breeder
// @Tags birds
// @Produce json
// @Param breeder_id path int true "Breeder ID"
// @Success 200 {array} model.Bird
// @Router /birds/breeder/{breeder_id} [get]
func (h *BirdHandler) ListByBreeder(c *gin.Context) {
	breederID, ok := parseIDParam(c, "breeder_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breeder id"})
		return
	}
	skip, limit := paginationParams(c)
	birds, err := h.svc.ListBirdsByBreeder(c.Request.Context(), breederID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, birds)
}

// ListByOwner godoc
// @Summary Birds of an owner
// @Tags birds
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {array} model.Bird
// @Router /birds/owner/{owner_id} [get]
func (h *BirdHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "owner_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}
	skip, limit := paginationParams(c)
	birds, err := h.svc.ListBirdsByOwner(c.Request.Context(), ownerID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, birds)
}

// ListBySex godoc
// @Summary Birds by sex
// @Tags birds
// @Produce json
// @Param sex path string true "M or F"
// @Success 200 {array} model.Bird
// @Failure 400 {object} model.ErrorResponse
// @Router /birds/sex/{sex} [get]
func (h *BirdHandler) ListBySex(c *gin.Context) {
	sex := c.Param("sex")
	if sex != "M" && sex != "F" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sex must be 'M' or 'F'"})
		return
	}
	skip, limit := paginationParams(c)
	birds, err := h.svc.ListBirdsBySex(c.Request.Context(), sex, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, birds)
}

// GetByBand godoc
// @Summary Get a bird by band ID
// @Tags birds
// @Produce json
// @Param band_id path string true "Band ID"
// @Success 200 {object} model.Bird
// @Failure 404 {object} model.ErrorResponse
// @Router /birds/band/{band_id} [get]
func (h *BirdHandler) GetByBand(c *gin.Context) {
	bird, err := h.svc.GetBirdByBandID(c.Request.Context(), c.Param("band_id"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bird not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, bird)
}

// Get godoc
// @Summary Get a bird
// @Tags birds
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Success 200 {object} model.Bird
// @Failure 404 {object} model.ErrorResponse
// @Router /birds/{bird_id} [get]
func (h *BirdHandler) Get(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}

	bird, err := h.svc.GetBird(c.Request.Context(), birdID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bird not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, bird)
}

// Update godoc
// @Summary Update a bird
// @Tags birds
// @Accept json
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Param request body model.BirdUpdateRequest true "Fields to update"
// @Success 200 {object} model.Bird
// @Failure 404 {object} model.ErrorResponse
// @Router /birds/{bird_id} [put]
func (h *BirdHandler) Update(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}

	var req model.BirdUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bird, err := h.svc.UpdateBird(c.Request.Context(), birdID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bird not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, bird)
}

// Delete godoc
// @Summary Delete a bird
// @Tags birds
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /birds/{bird_id} [delete]
func (h *BirdHandler) Delete(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}

	deleted, err := h.svc.DeleteBird(c.Request.Context(), birdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "bird not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "bird deleted"})
}
