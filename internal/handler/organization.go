package handler

import (
	"errors"
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	svc *service.OrganizationService
}

func NewOrganizationHandler(svc *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

// Create godoc
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body model.OrganizationCreateRequest true "Organization data"
// @Success 201 {object} model.Organization
// @Failure 409 {object} model.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req model.OrganizationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	org, err := h.svc.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "organization code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusCreated, org)
}

// List godoc
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} model.Organization
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	orgs, err := h.svc.ListOrganizations(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetByCode godoc
// @Summary Get an organization by code
// @Tags organizations
// @Produce json
// @Param organization_code path string true "Organization code"
// @Success 200 {object} model.Organization
// @Failure 404 {object} model.ErrorResponse
// @Router /organizations/code/{organization_code} [get]
func (h *OrganizationHandler) GetByCode(c *gin.Context) {
	org, err := h.svc.GetOrganizationByCode(c.Request.Context(), c.Param("organization_code"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, org)
}

// Get godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {object} model.Organization
// @Failure 404 {object} model.ErrorResponse
// @Router /organizations/{organization_id} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organization_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	org, err := h.svc.GetOrganization(c.Request.Context(), organizationID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, org)
}

// Update godoc
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Param request body model.OrganizationUpdateRequest true "Fields to update"
// @Success 200 {object} model.Organization
// @Failure 404 {object} model.ErrorResponse
// @Router /organizations/{organization_id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organization_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	var req model.OrganizationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	org, err := h.svc.UpdateOrganization(c.Request.Context(), organizationID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, org)
}

// Delete godoc
// @Summary Delete an organization
// @Tags organizations
// @Produce json
// @Param organization_id path int true "Organization ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /organizations/{organization_id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organization_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}

	deleted, err := h.svc.DeleteOrganization(c.Request.Context(), organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "organization deleted"})
}
