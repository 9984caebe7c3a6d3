package handler

import (
	"errors"
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type PairHandler struct {
	svc *service.PairService
}

func NewPairHandler(svc *service.PairService) *PairHandler {
	return &PairHandler{svc: svc}
}

// Create godoc
// @Summary Create a breeding pair
// @Description The combination of cock, hen, season and round must be unique.
// @Tags pairs
// @Accept json
// @Produce json
// @Param request body model.PairCreateRequest true "Pair data"
// @Success 201 {object} model.Pair
// @Failure 409 {object} model.ErrorResponse
// @Router /pairs [post]
func (h *PairHandler) Create(c *gin.Context) {
	var req model.PairCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.svc.CreatePair(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "pair already exists for this cock/hen/season/round"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusCreated, pair)
}

// List godoc
// @Summary List pairs
// @Tags pairs
// @Produce json
// @Success 200 {array} model.Pair
// @Router /pairs [get]
func (h *PairHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairs(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// Stats godoc
// @Summary Pair statistics
// @Tags pairs
// @Produce json
// @Success 200 {object} model.PairStatsResponse
// @Router /pairs/stats/total [get]
func (h *PairHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListBySeason godoc
// @Summary Pairs of a season
// @Tags pairs
// @Produce json
// @Param season path int true "Season year"
// @Success 200 {array} model.Pair
// @Router /pairs/season/{season} [get]
func (h *PairHandler) ListBySeason(c *gin.Context) {
	season, ok := parseIntParam(c, "season")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season"})
		return
	}
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairsBySeason(c.Request.Context(), season, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// ListBySeasonAndRound godoc
// @Summary Pairs of a season and round
// @Tags pairs
// @Produce json
// @Param season path int true "Season year"
// @Param round path int true "Round number"
// @Success 200 {array} model.Pair
// @Router /pairs/season/{season}/round/{round} [get]
func (h *PairHandler) ListBySeasonAndRound(c *gin.Context) {
	season, ok := parseIntParam(c, "season")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season"})
		return
	}
	round, ok := parseIntParam(c, "round")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round"})
		return
	}
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairsBySeasonAndRound(c.Request.Context(), season, round, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// ListByBird godoc
// @Summary Pairs a bird participated in, either side
// @Tags pairs
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Success 200 {array} model.Pair
// @Router /pairs/bird/{bird_id} [get]
func (h *PairHandler) ListByBird(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairsByBird(c.Request.Context(), birdID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// ListByCock godoc
// @Summary Pairs with a given cock
// @Tags pairs
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Success 200 {array} model.Pair
// @Router /pairs/cock/{bird_id} [get]
func (h *PairHandler) ListByCock(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairsByCock(c.Request.Context(), birdID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// ListByHen godoc
// @Summary Pairs with a given hen
// @Tags pairs
// @Produce json
// @Param bird_id path int true "Bird ID"
// @Success 200 {array} model.Pair
// @Router /pairs/hen/{bird_id} [get]
func (h *PairHandler) ListByHen(c *gin.Context) {
	birdID, ok := parseIDParam(c, "bird_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bird id"})
		return
	}
	skip, limit := paginationParams(c)
	pairs, err := h.svc.ListPairsByHen(c.Request.Context(), birdID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pairs)
}

// Get godoc
// @Summary Get a pair
// @Tags pairs
// @Produce json
// @Param pair_id path int true "Pair ID"
// @Success 200 {object} model.Pair
// @Failure 404 {object} model.ErrorResponse
// @Router /pairs/{pair_id} [get]
func (h *PairHandler) Get(c *gin.Context) {
	pairID, ok := parseIDParam(c, "pair_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pair id"})
		return
	}

	pair, err := h.svc.GetPair(c.Request.Context(), pairID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pair not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Update godoc
// @Summary Update a pair
// @Tags pairs
// @Accept json
// @Produce json
// @Param pair_id path int true "Pair ID"
// @Param request body model.PairUpdateRequest true "Fields to update"
// @Success 200 {object} model.Pair
// @Failure 404 {object} model.ErrorResponse
// @Router /pairs/{pair_id} [put]
func (h *PairHandler) Update(c *gin.Context) {
	pairID, ok := parseIDParam(c, "pair_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pair id"})
		return
	}

	var req model.PairUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.svc.UpdatePair(c.Request.Context(), pairID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pair not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Delete godoc
// @Summary Delete a pair
// @Tags pairs
// @Produce json
// @Param pair_id path int true "Pair ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /pairs/{pair_id} [delete]
func (h *PairHandler) Delete(c *gin.Context) {
	pairID, ok := parseIDParam(c, "pair_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pair id"})
		return
	}

	deleted, err := h.svc.DeletePair(c.Request.Context(), pairID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "pair not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "pair deleted"})
}
