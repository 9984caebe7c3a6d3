package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

const breederStatsCacheKey = "breeder_stats"

type BreederService struct {
	repo  *db.Postgres
	store cache.Store
}

func NewBreederService(repo *db.Postgres, store cache.Store) *BreederService {
	return &BreederService{repo: repo, store: store}
}

func (s *BreederService) CreateBreeder(ctx context.Context, req model.BreederCreateRequest) (*model.Breeder, error) {
	breeder, err := s.repo.CreateBreeder(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: breeder code already exists", ErrConflict)
		}
		return nil, err
	}
	s.store.CacheDelete(ctx, breederStatsCacheKey)
	return breeder, nil
}

func (s *BreederService) GetBreeder(ctx context.Context, breederID int64) (*model.Breeder, error) {
	return s.repo.GetBreederByID(ctx, breederID)
}

func (s *BreederService) GetBreederByCode(ctx context.Context, breederCode string) (*model.Breeder, error) {
	return s.repo.GetBreederByCode(ctx, breederCode)
}

func (s *BreederService) ListBreeders(ctx context.Context, skip, limit int) ([]model.Breeder, error) {
	return s.repo.ListBreeders(ctx, skip, limit)
}

func (s *BreederService) SearchBreeders(ctx context.Context, name string, skip, limit int) ([]model.Breeder, error) {
	return s.repo.SearchBreedersByName(ctx, name, skip, limit)
}

func (s *BreederService) UpdateBreeder(ctx context.Context, breederID int64, req model.BreederUpdateRequest) (*model.Breeder, error) {
	return s.repo.UpdateBreeder(ctx, breederID, req)
}

func (s *BreederService) DeleteBreeder(ctx context.Context, breederID int64) (bool, error) {
	deleted, err := s.repo.DeleteBreeder(ctx, breederID)
	if deleted {
		s.store.CacheDelete(ctx, breederStatsCacheKey)
	}
	return deleted, err
}

func (s *BreederService) Stats(ctx context.Context) (*model.BreederStatsResponse, error) {
	if raw, ok := s.store.CacheGet(ctx, breederStatsCacheKey); ok {
		var cached model.BreederStatsResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.repo.CountBreeders(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.BreederStatsResponse{TotalBreeders: total}
	if raw, err := json.Marshal(stats); err == nil {
		s.store.CacheSet(ctx, breederStatsCacheKey, string(raw), statsCacheTTL)
	}
	return stats, nil
}
