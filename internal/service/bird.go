package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

const birdStatsCacheKey = "bird_stats"
const statsCacheTTL = time.Minute

type BirdService struct {
	repo  *db.Postgres
	store cache.Store
}

func NewBirdService(repo *db.Postgres, store cache.Store) *BirdService {
	return &BirdService{repo: repo, store: store}
}

// CreateBird fills in whatever the request left out. With no band_id it
// generates one as breeder_code-YYYY-NN from breeder_id, bird_year and
// bird_number; with a band_id it derives the missing breeder, year and dob
// back out of it. Parent band IDs are resolved (and auto-created) inside the
// insert transaction.
func (s *BirdService) CreateBird(ctx context.Context, req model.BirdCreateRequest) (*model.Bird, error) {
	bandID := req.BandID
	breederID := req.BreederID
	birdYear := req.BirdYear

	if bandID == "" {
		if breederID == nil {
			return nil, fmt.Errorf("%w: breeder_id is required to auto-generate band_id", ErrInvalidInput)
		}
		if birdYear == nil {
			return nil, fmt.Errorf("%w: bird_year is required to auto-generate band_id", ErrInvalidInput)
		}
		if req.BirdNumber == nil {
			return nil, fmt.Errorf("%w: bird_number is required to auto-generate band_id", ErrInvalidInput)
		}

		breeder, err := s.repo.GetBreederByID(ctx, *breederID)
		if err != nil {
			if db.IsNoRows(err) {
				return nil, fmt.Errorf("%w: breeder with ID %d not found", ErrInvalidInput, *breederID)
			}
			return nil, err
		}
		bandID = formatBandID(breeder.BreederCode, *birdYear, *req.BirdNumber)
	}

	if breederID == nil {
		code, _, _, err := splitBandID(bandID)
		if err != nil {
			return nil, err
		}
		breeder, err := s.repo.GetBreederByCode(ctx, code)
		if err != nil {
			if db.IsNoRows(err) {
				return nil, fmt.Errorf("%w: breeder with code %q not found", ErrInvalidInput, code)
			}
			return nil, err
		}
		breederID = &breeder.ID
	}

	if birdYear == nil {
		_, year, _, err := splitBandID(bandID)
		if err != nil {
			return nil, err
		}
		birdYear = &year
	}

	dob := req.DOB
	if dob == nil && birdYear != nil {
		jan1 := time.Date(*birdYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		dob = &jan1
	}

	bird := model.Bird{
		BandID:    bandID,
		Name:      req.Name,
		DOB:       dob,
		Sex:       req.Sex,
		BreederID: breederID,
		OwnerID:   req.OwnerID,
	}

	created, err := s.repo.CreateBirdWithParents(ctx, bird, req.FatherBandID, req.MotherBandID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: band ID already exists", ErrConflict)
		}
		if errors.Is(err, db.ErrParentSex) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	s.store.CacheDelete(ctx, birdStatsCacheKey)
	return created, nil
}

// formatBandID renders breeder_code-YYYY-NN with a 4-digit year and a
// zero-padded 2-digit bird number.
func formatBandID(breederCode string, year, number int) string {
	return fmt.Sprintf("%s-%04d-%02d", breederCode, year, number)
}

// splitBandID breaks a band ID back into breeder code, year and number. The
// breeder code may itself contain dashes, so the last two segments are taken
// as year and number.
func splitBandID(bandID string) (code string, year, number int, err error) {
	parts := strings.Split(bandID, "-")
	if len(parts) < 3 {
		return "", 0, 0, fmt.Errorf("%w: band_id %q is not in breeder_code-YYYY-NN form", ErrInvalidInput, bandID)
	}

	year, err = strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: could not derive year from band_id %q", ErrInvalidInput, bandID)
	}
	number, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: could not derive bird number from band_id %q", ErrInvalidInput, bandID)
	}

	return strings.Join(parts[:len(parts)-2], "-"), year, number, nil
}

func (s *BirdService) GetBird(ctx context.Context, birdID int64) (*model.Bird, error) {
	return s.repo.GetBirdByID(ctx, birdID)
}

func (s *BirdService) GetBirdByBandID(ctx context.Context, bandID string) (*model.Bird, error) {
	return s.repo.GetBirdByBandID(ctx, bandID)
}

func (s *BirdService) ListBirds(ctx context.Context, skip, limit int) ([]model.Bird, error) {
	return s.repo.ListBirds(ctx, skip, limit)
}

func (s *BirdService) ListBirdsByBreeder(ctx context.Context, breederID int64, skip, limit int) ([]model.Bird, error) {
	return s.repo.ListBirdsByBreeder(ctx, breederID, skip, limit)
}

func (s *BirdService) ListBirdsByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]model.Bird, error) {
	return s.repo.ListBirdsByOwner(ctx, ownerID, skip, limit)
}

func (s *BirdService) ListBirdsBySex(ctx context.Context, sex string, skip, limit int) ([]model.Bird, error) {
	return s.repo.ListBirdsBySex(ctx, sex, skip, limit)
}

func (s *BirdService) UpdateBird(ctx context.Context, birdID int64, req model.BirdUpdateRequest) (*model.Bird, error) {
	bird, err := s.repo.UpdateBird(ctx, birdID, req)
	if err != nil {
		return nil, err
	}
	s.store.CacheDelete(ctx, birdStatsCacheKey)
	return bird, nil
}

func (s *BirdService) DeleteBird(ctx context.Context, birdID int64) (bool, error) {
	deleted, err := s.repo.DeleteBird(ctx, birdID)
	if deleted {
		s.store.CacheDelete(ctx, birdStatsCacheKey)
	}
	return deleted, err
}

// Stats serves from the short-TTL cache when it can; a cold or unreachable
// cache just means three counts against the database.
func (s *BirdService) Stats(ctx context.Context) (*model.BirdStatsResponse, error) {
	if raw, ok := s.store.CacheGet(ctx, birdStatsCacheKey); ok {
		var cached model.BirdStatsResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.repo.CountBirds(ctx)
	if err != nil {
		return nil, err
	}
	males, err := s.repo.CountBirdsBySex(ctx, "M")
	if err != nil {
		return nil, err
	}
	females, err := s.repo.CountBirdsBySex(ctx, "F")
	if err != nil {
		return nil, err
	}

	stats := &model.BirdStatsResponse{TotalBirds: total, Males: males, Females: females}
	if raw, err := json.Marshal(stats); err == nil {
		s.store.CacheSet(ctx, birdStatsCacheKey, string(raw), statsCacheTTL)
	}
	return stats, nil
}
