package service

import (
	"context"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/db"
)

type SystemStats struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	TotalBirds    int64 `json:"total_birds"`
	TotalBreeders int64 `json:"total_breeders"`
	TotalPairs    int64 `json:"total_pairs"`
	TotalRoles    int64 `json:"total_roles"`
}

type CacheStats struct {
	Keys      int64 `json:"keys"`
	Reachable bool  `json:"reachable"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type DetailedHealth struct {
	Status   string          `json:"status"`
	Database ComponentHealth `json:"database"`
	Redis    ComponentHealth `json:"redis"`
}

type AdminService struct {
	repo  *db.Postgres
	store cache.Store
}

func NewAdminService(repo *db.Postgres, store cache.Store) *AdminService {
	return &AdminService{repo: repo, store: store}
}

func (s *AdminService) SystemStats(ctx context.Context) (*SystemStats, error) {
	stats := &SystemStats{}
	var err error

	if stats.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = s.repo.CountActiveUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBirds, err = s.repo.CountBirds(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBreeders, err = s.repo.CountBreeders(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPairs, err = s.repo.CountPairs(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRoles, err = s.repo.CountRoles(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) RedisInfo(ctx context.Context) (string, error) {
	return s.store.Info(ctx)
}

func (s *AdminService) CacheStats(ctx context.Context) *CacheStats {
	keys, ok := s.store.CacheKeyCount(ctx)
	return &CacheStats{Keys: keys, Reachable: ok}
}

// FlushCache clears the generic cache namespace. Revocation entries are out
// of reach by construction.
func (s *AdminService) FlushCache(ctx context.Context) (int64, bool) {
	return s.store.CacheFlush(ctx)
}

func (s *AdminService) Health(ctx context.Context) *DetailedHealth {
	health := &DetailedHealth{
		Status:   "ok",
		Database: ComponentHealth{Status: "ok"},
		Redis:    ComponentHealth{Status: "ok"},
	}

	if err := s.repo.Ping(ctx); err != nil {
		health.Status = "error"
		health.Database = ComponentHealth{Status: "error", Message: err.Error()}
	}
	if err := s.store.Ping(ctx); err != nil {
		health.Status = "error"
		health.Redis = ComponentHealth{Status: "error", Message: err.Error()}
	}
	return health
}
