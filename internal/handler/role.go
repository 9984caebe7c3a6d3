package handler

import (
	"errors"
	"net/http"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

func NewRoleHandler(svc *service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// Create godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param request body model.RoleCreateRequest true "Role data"
// @Success 201 {object} model.Role
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req model.RoleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	role, err := h.svc.CreateRole(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "role already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, role)
}

// List godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} model.Role
// @Router /roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	skip, limit := paginationParams(c)
	roles, err := h.svc.ListRoles(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetByName godoc
// @Summary Get a role by name
// @Tags roles
// @Produce json
// @Param role_name path string true "Role name"
// @Success 200 {object} model.Role
// @Failure 404 {object} model.ErrorResponse
// @Router /roles/name/{role_name} [get]
func (h *RoleHandler) GetByName(c *gin.Context) {
	role, err := h.svc.GetRoleByName(c.Request.Context(), c.Param("role_name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case db.IsNoRows(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}
	c.JSON(http.StatusOK, role)
}

// Get godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Param role_id path int true "Role ID"
// @Success 200 {object} model.Role
// @Failure 404 {object} model.ErrorResponse
// @Router /roles/{role_id} [get]
func (h *RoleHandler) Get(c *gin.Context) {
	roleID, ok := parseIDParam(c, "role_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	role, err := h.svc.GetRole(c.Request.Context(), roleID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, role)
}

// Update godoc
// @Summary Update a role description
// @Tags roles
// @Accept json
// @Produce json
// @Param role_id path int true "Role ID"
// @Param request body model.RoleUpdateRequest true "Fields to update"
// @Success 200 {object} model.Role
// @Failure 404 {object} model.ErrorResponse
// @Router /roles/{role_id} [put]
func (h *RoleHandler) Update(c *gin.Context) {
	roleID, ok := parseIDParam(c, "role_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	var req model.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	role, err := h.svc.UpdateRole(c.Request.Context(), roleID, req)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, role)
}

// Delete godoc
// @Summary Delete a role
// @Tags roles
// @Produce json
// @Param role_id path int true "Role ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /roles/{role_id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	roleID, ok := parseIDParam(c, "role_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	deleted, err := h.svc.DeleteRole(c.Request.Context(), roleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "role deleted"})
}

// Assign godoc
// @Summary Assign a role to a user
// @Tags roles
// @Produce json
// @Param role_id path int true "Role ID"
// @Param user_id path int true "User ID"
// @Success 201 {object} model.UserRole
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /roles/{role_id}/assign/{user_id} [post]
func (h *RoleHandler) Assign(c *gin.Context) {
	roleID, ok := parseIDParam(c, "role_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ur, err := h.svc.AssignRole(c.Request.Context(), roleID, userID)
	if err != nil {
		switch {
		case db.IsNoRows(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "role or user not found"})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "role already assigned to user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, ur)
}

// Unassign godoc
// @Summary Remove a role from a user
// @Tags roles
// @Produce json
// @Param role_id path int true "Role ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /roles/{role_id}/assign/{user_id} [delete]
func (h *RoleHandler) Unassign(c *gin.Context) {
	roleID, ok := parseIDParam(c, "role_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	removed, err := h.svc.UnassignRole(c.Request.Context(), roleID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "role removed from user"})
}

// UserRoles godoc
// @Summary Roles assigned to a user
// @Tags roles
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Role
// @Router /roles/user/{user_id} [get]
func (h *RoleHandler) UserRoles(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	roles, err := h.svc.GetUserRoles(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, roles)
}
