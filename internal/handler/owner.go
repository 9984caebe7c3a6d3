package handler

import (
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	svc *service.OwnerService
}

func NewOwnerHandler(svc *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

// Create godoc
// @Summary Create an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body model.OwnerCreateRequest true "Owner data"
// @Success 201 {object} model.Owner
// @Router /owners [post]
func (h *OwnerHandler) Create(c *gin.Context) {
	var req model.OwnerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	owner, err := h.svc.CreateOwner(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// List godoc
// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {array} model.Owner
// @Router /owners [get]
func (h *OwnerHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	owners, err := h.svc.ListOwners(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, owners)
}

// Search godoc
// @Summary Search owners by name substring
// @Tags owners
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {array} model.Owner
// @Router /owners/search/{name} [get]
func (h *OwnerHandler) Search(c *gin.Context) {
	skip, limit := paginationParams(c)
	owners, err := h.svc.SearchOwners(c.Request.Context(), c.Param("name"), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, owners)
}

// Get godoc
// @Summary Get an owner
// @Tags owners
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {object} model.Owner
// @Failure 404 {object} model.ErrorResponse
// @Router /owners/{owner_id} [get]
func (h *OwnerHandler) Get(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "owner_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	owner, err := h.svc.GetOwner(c.Request.Context(), ownerID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Update godoc
// @Summary Update an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Param request body model.OwnerUpdateRequest true "Fields to update"
// @Success 200 {object} model.Owner
// @Failure 404 {object} model.ErrorResponse
// @Router /owners/{owner_id} [put]
func (h *OwnerHandler) Update(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "owner_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	var req model.OwnerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	owner, err := h.svc.UpdateOwner(c.Request.Context(), ownerID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Delete godoc
// @Summary Delete an owner
// @Tags owners
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /owners/{owner_id} [delete]
func (h *OwnerHandler) Delete(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "owner_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	deleted, err := h.svc.DeleteOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "owner deleted"})
}
