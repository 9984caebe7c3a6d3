package service

import (
	"context"
	"fmt"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

type RoleService struct {
	repo *db.Postgres
}

func NewRoleService(repo *db.Postgres) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) CreateRole(ctx context.Context, req model.RoleCreateRequest) (*model.Role, error) {
	if !model.IsValidRoleName(req.RoleName) {
		return nil, fmt.Errorf("%w: unknown role name %q", ErrInvalidInput, req.RoleName)
	}

	role, err := s.repo.CreateRole(ctx, req.RoleName, req.Description)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: role %q already exists", ErrConflict, req.RoleName)
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) GetRole(ctx context.Context, roleID int64) (*model.Role, error) {
	return s.repo.GetRoleByID(ctx, roleID)
}

func (s *RoleService) GetRoleByName(ctx context.Context, roleName string) (*model.Role, error) {
	if !model.IsValidRoleName(roleName) {
		return nil, fmt.Errorf("%w: unknown role name %q", ErrInvalidInput, roleName)
	}
	return s.repo.GetRoleByName(ctx, roleName)
}

func (s *RoleService) ListRoles(ctx context.Context, skip, limit int) ([]model.Role, error) {
	return s.repo.ListRoles(ctx, skip, limit)
}

func (s *RoleService) UpdateRole(ctx context.Context, roleID int64, req model.RoleUpdateRequest) (*model.Role, error) {
	return s.repo.UpdateRole(ctx, roleID, req.Description)
}

func (s *RoleService) DeleteRole(ctx context.Context, roleID int64) (bool, error) {
	return s.repo.DeleteRole(ctx, roleID)
}

// AssignRole links a role to a user; both must exist. Assigning twice is a
// conflict, not a silent success.
func (s *RoleService) AssignRole(ctx context.Context, roleID, userID int64) (*model.UserRole, error) {
	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	ur, err := s.repo.AssignRoleToUser(ctx, userID, roleID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: role already assigned to user", ErrConflict)
		}
		return nil, err
	}
	return ur, nil
}

func (s *RoleService) UnassignRole(ctx context.Context, roleID, userID int64) (bool, error) {
	return s.repo.RemoveRoleFromUser(ctx, userID, roleID)
}

func (s *RoleService) GetUserRoles(ctx context.Context, userID int64) ([]model.Role, error) {
	return s.repo.GetUserRoles(ctx, userID)
}

func (s *RoleService) UserHasRole(ctx context.Context, userID int64, roleName string) (bool, error) {
	return s.repo.UserHasRole(ctx, userID, roleName)
}
