package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const breederColumns = `id, breeder_code, first_name, last_name, created_at, updated_at`

func scanBreeder(row interface{ Scan(dest ...any) error }) (*model.Breeder, error) {
	var b model.Breeder
	err := row.Scan(
		&b.ID,
		&b.BreederCode,
		&b.FirstName,
		&b.LastName,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (db *Postgres) CreateBreeder(ctx context.Context, req model.BreederCreateRequest) (*model.Breeder, error) {
	query := `
		INSERT INTO breeder (breeder_code, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING ` + breederColumns
	return scanBreeder(db.Pool.QueryRow(ctx, query, req.BreederCode, req.FirstName, req.LastName))
}

func (db *Postgres) GetBreederByID(ctx context.Context, breederID int64) (*model.Breeder, error) {
	query := `SELECT ` + breederColumns + ` FROM breeder WHERE id = $1`
	return scanBreeder(db.Pool.QueryRow(ctx, query, breederID))
}

func (db *Postgres) GetBreederByCode(ctx context.Context, breederCode string) (*model.Breeder, error) {
	query := `SELECT ` + breederColumns + ` FROM breeder WHERE breeder_code = $1`
	return scanBreeder(db.Pool.QueryRow(ctx, query, breederCode))
}

func (db *Postgres) ListBreeders(ctx context.Context, skip, limit int) ([]model.Breeder, error) {
	query := `SELECT ` + breederColumns + ` FROM breeder ORDER BY id OFFSET $1 LIMIT $2`
	return db.queryBreeders(ctx, query, skip, limit)
}

// SearchBreedersByName matches the substring case-insensitively against both
// first and last name.
func (db *Postgres) SearchBreedersByName(ctx context.Context, name string, skip, limit int) ([]model.Breeder, error) {
	query := `
		SELECT ` + breederColumns + `
		FROM breeder
		WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryBreeders(ctx, query, name, skip, limit)
}

func (db *Postgres) queryBreeders(ctx context.Context, query string, args ...any) ([]model.Breeder, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breeders := []model.Breeder{}
	for rows.Next() {
		breeder, err := scanBreeder(rows)
		if err != nil {
			return nil, err
		}
		breeders = append(breeders, *breeder)
	}
	return breeders, rows.Err()
}

func (db *Postgres) UpdateBreeder(ctx context.Context, breederID int64, req model.BreederUpdateRequest) (*model.Breeder, error) {
	query := `
		UPDATE breeder
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + breederColumns
	return scanBreeder(db.Pool.QueryRow(ctx, query, breederID, req.FirstName, req.LastName))
}

func (db *Postgres) DeleteBreeder(ctx context.Context, breederID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM breeder WHERE id = $1`, breederID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) CountBreeders(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM breeder`).Scan(&count)
	return count, err
}
