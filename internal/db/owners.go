package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const ownerColumns = `id, first_name, last_name, created_at, updated_at`

func scanOwner(row interface{ Scan(dest ...any) error }) (*model.Owner, error) {
	var o model.Owner
	err := row.Scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (db *Postgres) CreateOwner(ctx context.Context, req model.OwnerCreateRequest) (*model.Owner, error) {
	query := `
		INSERT INTO owner (first_name, last_name)
		VALUES ($1, $2)
		RETURNING ` + ownerColumns
	return scanOwner(db.Pool.QueryRow(ctx, query, req.FirstName, req.LastName))
}

func (db *Postgres) GetOwnerByID(ctx context.Context, ownerID int64) (*model.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owner WHERE id = $1`
	return scanOwner(db.Pool.QueryRow(ctx, query, ownerID))
}

func (db *Postgres) ListOwners(ctx context.Context, skip, limit int) ([]model.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owner ORDER BY id OFFSET $1 LIMIT $2`
	return db.queryOwners(ctx, query, skip, limit)
}

func (db *Postgres) SearchOwnersByName(ctx context.Context, name string, skip, limit int) ([]model.Owner, error) {
	query := `
		SELECT ` + ownerColumns + `
		FROM owner
		WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryOwners(ctx, query, name, skip, limit)
}

func (db *Postgres) queryOwners(ctx context.Context, query string, args ...any) ([]model.Owner, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []model.Owner{}
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		owners = append(owners, *owner)
	}
	return owners, rows.Err()
}

func (db *Postgres) UpdateOwner(ctx context.Context, ownerID int64, req model.OwnerUpdateRequest) (*model.Owner, error) {
	query := `
		UPDATE owner
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + ownerColumns
	return scanOwner(db.Pool.QueryRow(ctx, query, ownerID, req.FirstName, req.LastName))
}

func (db *Postgres) DeleteOwner(ctx context.Context, ownerID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM owner WHERE id = $1`, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
