package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/birdband/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

// ErrParentSex is returned when a referenced father is not male or a
// referenced mother is not female.
var ErrParentSex = errors.New("parent bird has wrong sex")

const birdColumns = `id, band_id, name, dob, sex, father_id, mother_id, breeder_id, owner_id, created_at, updated_at`

func scanBird(row interface{ Scan(dest ...any) error }) (*model.Bird, error) {
	var b model.Bird
	err := row.Scan(
		&b.ID,
		&b.BandID,
		&b.Name,
		&b.DOB,
		&b.Sex,
		&b.FatherID,
		&b.MotherID,
		&b.BreederID,
		&b.OwnerID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBirdWithParents inserts a bird, resolving father/mother band IDs to
// bird rows first. A missing father is auto-created as a male bird with the
// given band ID, a missing mother as a female one; an existing parent with
// the wrong sex aborts the whole transaction with ErrParentSex.
func (db *Postgres) CreateBirdWithParents(ctx context.Context, b model.Bird, fatherBandID, motherBandID string) (*model.Bird, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if fatherBandID != "" {
		fatherID, err := resolveParent(ctx, tx, fatherBandID, "M", b.BreederID, b.OwnerID)
		if err != nil {
			return nil, err
		}
		b.FatherID = &fatherID
	}
	if motherBandID != "" {
		motherID, err := resolveParent(ctx, tx, motherBandID, "F", b.BreederID, b.OwnerID)
		if err != nil {
			return nil, err
		}
		b.MotherID = &motherID
	}

	query := `
		INSERT INTO bird (band_id, name, dob, sex, father_id, mother_id, breeder_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + birdColumns
	created, err := scanBird(tx.QueryRow(ctx, query,
		b.BandID, b.Name, b.DOB, b.Sex, b.FatherID, b.MotherID, b.BreederID, b.OwnerID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func resolveParent(ctx context.Context, tx pgx.Tx, bandID, wantSex string, breederID, ownerID *int64) (int64, error) {
	var id int64
	var sex *string
	err := tx.QueryRow(ctx, `SELECT id, sex FROM bird WHERE band_id = $1`, bandID).Scan(&id, &sex)
	if err == nil {
		if sex == nil || *sex != wantSex {
			return 0, fmt.Errorf("%w: bird %q must have sex %q", ErrParentSex, bandID, wantSex)
		}
		return id, nil
	}
	if !IsNoRows(err) {
		return 0, err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bird (band_id, sex, breeder_id, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, bandID, wantSex, breederID, ownerID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) GetBirdByID(ctx context.Context, birdID int64) (*model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird WHERE id = $1`
	return scanBird(db.Pool.QueryRow(ctx, query, birdID))
}

func (db *Postgres) GetBirdByBandID(ctx context.Context, bandID string) (*model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird WHERE band_id = $1`
	return scanBird(db.Pool.QueryRow(ctx, query, bandID))
}

func (db *Postgres) BirdExistsByBandID(ctx context.Context, bandID string) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bird WHERE band_id = $1)`, bandID).Scan(&exists)
	return exists, err
}

func (db *Postgres) ListBirds(ctx context.Context, skip, limit int) ([]model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird ORDER BY id OFFSET $1 LIMIT $2`
	return db.queryBirds(ctx, query, skip, limit)
}

func (db *Postgres) ListBirdsByBreeder(ctx context.Context, breederID int64, skip, limit int) ([]model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird WHERE breeder_id = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryBirds(ctx, query, breederID, skip, limit)
}

func (db *Postgres) ListBirdsByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird WHERE owner_id = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryBirds(ctx, query, ownerID, skip, limit)
}

func (db *Postgres) ListBirdsBySex(ctx context.Context, sex string, skip, limit int) ([]model.Bird, error) {
	query := `SELECT ` + birdColumns + ` FROM bird WHERE sex = $1 ORDER BY id OFFSET $2 LIMIT $3`
	return db.queryBirds(ctx, query, sex, skip, limit)
}

func (db *Postgres) queryBirds(ctx context.Context, query string, args ...any) ([]model.Bird, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	birds := []model.Bird{}
	for rows.Next() {
		bird, err := scanBird(rows)
		if err != nil {
			return nil, err
		}
		birds = append(birds, *bird)
	}
	return birds, rows.Err()
}

func (db *Postgres) UpdateBird(ctx context.Context, birdID int64, req model.BirdUpdateRequest) (*model.Bird, error) {
	query := `
		UPDATE bird
		SET name = COALESCE($2, name),
		    dob = COALESCE($3, dob),
		    sex = COALESCE($4, sex),
		    breeder_id = COALESCE($5, breeder_id),
		    owner_id = COALESCE($6, owner_id),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + birdColumns
	return scanBird(db.Pool.QueryRow(ctx, query, birdID, req.Name, req.DOB, req.Sex, req.BreederID, req.OwnerID))
}

func (db *Postgres) DeleteBird(ctx context.Context, birdID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM bird WHERE id = $1`, birdID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) CountBirds(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bird`).Scan(&count)
	return count, err
}

func (db *Postgres) CountBirdsBySex(ctx context.Context, sex string) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bird WHERE sex = $1`, sex).Scan(&count)
	return count, err
}
