package service

import (
	"context"
	"fmt"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

type OrganizationService struct {
	repo *db.Postgres
}

func NewOrganizationService(repo *db.Postgres) *OrganizationService {
	return &OrganizationService{repo: repo}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, req model.OrganizationCreateRequest) (*model.Organization, error) {
	org, err := s.repo.CreateOrganization(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: organization code already exists", ErrConflict)
		}
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, organizationID int64) (*model.Organization, error) {
	return s.repo.GetOrganizationByID(ctx, organizationID)
}

func (s *OrganizationService) GetOrganizationByCode(ctx context.Context, organizationCode string) (*model.Organization, error) {
	return s.repo.GetOrganizationByCode(ctx, organizationCode)
}

func (s *OrganizationService) ListOrganizations(ctx context.Context, skip, limit int) ([]model.Organization, error) {
	return s.repo.ListOrganizations(ctx, skip, limit)
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, organizationID int64, req model.OrganizationUpdateRequest) (*model.Organization, error) {
	return s.repo.UpdateOrganization(ctx, organizationID, req)
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, organizationID int64) (bool, error) {
	return s.repo.DeleteOrganization(ctx, organizationID)
}
