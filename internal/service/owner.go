package service

import (
	"context"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

type OwnerService struct {
	repo *db.Postgres
}

func NewOwnerService(repo *db.Postgres) *OwnerService {
	return &OwnerService{repo: repo}
}

func (s *OwnerService) CreateOwner(ctx context.Context, req model.OwnerCreateRequest) (*model.Owner, error) {
	return s.repo.CreateOwner(ctx, req)
}

func (s *OwnerService) GetOwner(ctx context.Context, ownerID int64) (*model.Owner, error) {
	return s.repo.GetOwnerByID(ctx, ownerID)
}

func (s *OwnerService) ListOwners(ctx context.Context, skip, limit int) ([]model.Owner, error) {
	return s.repo.ListOwners(ctx, skip, limit)
}

func (s *OwnerService) SearchOwners(ctx context.Context, name string, skip, limit int) ([]model.Owner, error) {
	return s.repo.SearchOwnersByName(ctx, name, skip, limit)
}

func (s *OwnerService) UpdateOwner(ctx context.Context, ownerID int64, req model.OwnerUpdateRequest) (*model.Owner, error) {
	return s.repo.UpdateOwner(ctx, ownerID, req)
}

func (s *OwnerService) DeleteOwner(ctx context.Context, ownerID int64) (bool, error) {
	return s.repo.DeleteOwner(ctx, ownerID)
}
