package service

import (
	"context"
	"fmt"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

type PairService struct {
	repo *db.Postgres
}

func NewPairService(repo *db.Postgres) *PairService {
	return &PairService{repo: repo}
}

func (s *PairService) CreatePair(ctx context.Context, req model.PairCreateRequest) (*model.Pair, error) {
	pair, err := s.repo.CreatePair(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: pair already exists for this cock/hen/season/round", ErrConflict)
		}
		return nil, err
	}
	return pair, nil
}

func (s *PairService) GetPair(ctx context.Context, pairID int64) (*model.Pair, error) {
	return s.repo.GetPairByID(ctx, pairID)
}

func (s *PairService) ListPairs(ctx context.Context, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairs(ctx, skip, limit)
}

func (s *PairService) ListPairsBySeason(ctx context.Context, season, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairsBySeason(ctx, season, skip, limit)
}

func (s *PairService) ListPairsBySeasonAndRound(ctx context.Context, season, round, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairsBySeasonAndRound(ctx, season, round, skip, limit)
}

func (s *PairService) ListPairsByBird(ctx context.Context, birdID int64, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairsByBird(ctx, birdID, skip, limit)
}

func (s *PairService) ListPairsByCock(ctx context.Context, cockID int64, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairsByCock(ctx, cockID, skip, limit)
}

func (s *PairService) ListPairsByHen(ctx context.Context, henID int64, skip, limit int) ([]model.Pair, error) {
	return s.repo.ListPairsByHen(ctx, henID, skip, limit)
}

func (s *PairService) UpdatePair(ctx context.Context, pairID int64, req model.PairUpdateRequest) (*model.Pair, error) {
	return s.repo.UpdatePair(ctx, pairID, req)
}

func (s *PairService) DeletePair(ctx context.Context, pairID int64) (bool, error) {
	return s.repo.DeletePair(ctx, pairID)
}

func (s *PairService) Stats(ctx context.Context) (*model.PairStatsResponse, error) {
	total, err := s.repo.CountPairs(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PairStatsResponse{TotalPairs: total}, nil
}
