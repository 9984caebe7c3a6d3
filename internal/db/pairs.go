package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const pairColumns = `id, season, round, cock, hen, date_paired, number_eggs, number_fertile_eggs, incubation_start, incubation_end, band_date, number_of_offspring, created_at, updated_at`

func scanPair(row interface{ Scan(dest ...any) error }) (*model.Pair, error) {
	var p model.Pair
	err := row.Scan(
		&p.ID,
		&p.Season,
		&p.Round,
		&p.Cock,
		&p.Hen,
		&p.DatePaired,
		&p.NumberEggs,
		&p.NumberFertileEggs,
		&p.IncubationStart,
		&p.IncubationEnd,
		&p.BandDate,
		&p.NumberOfOffspring,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *Postgres) CreatePair(ctx context.Context, req model.PairCreateRequest) (*model.Pair, error) {
	query := `
		INSERT INTO pairs (season, round, cock, hen, date_paired, number_eggs, number_fertile_eggs,
			incubation_start, incubation_end, band_date, number_of_offspring)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6, $7, $8, $9, $10, $11)
		RETURNING ` + pairColumns
	return scanPair(db.Pool.QueryRow(ctx, query,
		req.Season, req.Round, req.Cock, req.Hen, req.DatePaired,
		req.NumberEggs, req.NumberFertileEggs, req.IncubationStart,
		req.IncubationEnd, req.BandDate, req.NumberOfOffspring))
}

func (db *Postgres) GetPairByID(ctx context.Context, pairID int64) (*model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE id = $1`
	return scanPair(db.Pool.QueryRow(ctx, query, pairID))
}

func (db *Postgres) ListPairs(ctx context.Context, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs ORDER BY id OFFSET $1 LIMIT $2`
	return db.queryPairs(ctx, query, skip, limit)
}

func (db *Postgres) ListPairsBySeason(ctx context.Context, season, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE season = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryPairs(ctx, query, season, skip, limit)
}

func (db *Postgres) ListPairsBySeasonAndRound(ctx context.Context, season, round, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE season = $1 AND round = $2 ORDER BY id OFFSET $3 LIMIT $4`
	return db.queryPairs(ctx, query, season, round, skip, limit)
}

func (db *Postgres) ListPairsByBird(ctx context.Context, birdID int64, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE cock = $1 OR hen = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryPairs(ctx, query, birdID, skip, limit)
}

func (db *Postgres) ListPairsByCock(ctx context.Context, cockID int64, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE cock = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryPairs(ctx, query, cockID, skip, limit)
}

func (db *Postgres) ListPairsByHen(ctx context.Context, henID int64, skip, limit int) ([]model.Pair, error) {
	query := `SELECT ` + pairColumns + ` FROM pairs WHERE hen = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryPairs(ctx, query, henID, skip, limit)
}

func (db *Postgres) queryPairs(ctx context.Context, query string, args ...any) ([]model.Pair, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := []model.Pair{}
	for rows.Next() {
		pair, err := scanPair(rows)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, *pair)
	}
	return pairs, rows.Err()
}

func (db *Postgres) UpdatePair(ctx context.Context, pairID int64, req model.PairUpdateRequest) (*model.Pair, error) {
	query := `
		UPDATE pairs
		SET number_eggs = COALESCE($2, number_eggs),
		    number_fertile_eggs = COALESCE($3, number_fertile_eggs),
		    incubation_start = COALESCE($4, incubation_start),
		    incubation_end = COALESCE($5, incubation_end),
		    band_date = COALESCE($6, band_date),
		    number_of_offspring = COALESCE($7, number_of_offspring),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + pairColumns
	return scanPair(db.Pool.QueryRow(ctx, query, pairID,
		req.NumberEggs, req.NumberFertileEggs, req.IncubationStart,
		req.IncubationEnd, req.BandDate, req.NumberOfOffspring))
}

func (db *Postgres) DeletePair(ctx context.Context, pairID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM pairs WHERE id = $1`, pairID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) CountPairs(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pairs`).Scan(&count)
	return count, err
}
