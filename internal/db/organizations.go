package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const organizationColumns = `id, organization_code, organization_name, organization_alias, address, country_code, country_name, created_at, updated_at`

func scanOrganization(row interface{ Scan(dest ...any) error }) (*model.Organization, error) {
	var o model.Organization
	err := row.Scan(
		&o.ID,
		&o.OrganizationCode,
		&o.OrganizationName,
		&o.OrganizationAlias,
		&o.Address,
		&o.CountryCode,
		&o.CountryName,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (db *Postgres) CreateOrganization(ctx context.Context, req model.OrganizationCreateRequest) (*model.Organization, error) {
	query := `
		INSERT INTO organization (organization_code, organization_name, organization_alias, address, country_code, country_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + organizationColumns
	return scanOrganization(db.Pool.QueryRow(ctx, query,
		req.OrganizationCode, req.OrganizationName, req.OrganizationAlias,
		req.Address, req.CountryCode, req.CountryName))
}

func (db *Postgres) GetOrganizationByID(ctx context.Context, organizationID int64) (*model.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization WHERE id = $1`
	return scanOrganization(db.Pool.QueryRow(ctx, query, organizationID))
}

func (db *Postgres) GetOrganizationByCode(ctx context.Context, organizationCode string) (*model.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization WHERE organization_code = $1`
	return scanOrganization(db.Pool.QueryRow(ctx, query, organizationCode))
}

func (db *Postgres) ListOrganizations(ctx context.Context, skip, limit int) ([]model.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []model.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, rows.Err()
}

func (db *Postgres) UpdateOrganization(ctx context.Context, organizationID int64, req model.OrganizationUpdateRequest) (*model.Organization, error) {
	query := `
		UPDATE organization
		SET organization_name = COALESCE($2, organization_name),
		    organization_alias = COALESCE($3, organization_alias),
		    address = COALESCE($4, address),
		    country_code = COALESCE($5, country_code),
		    country_name = COALESCE($6, country_name),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + organizationColumns
	return scanOrganization(db.Pool.QueryRow(ctx, query, organizationID,
		req.OrganizationName, req.OrganizationAlias, req.Address, req.CountryCode, req.CountryName))
}

func (db *Postgres) DeleteOrganization(ctx context.Context, organizationID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM organization WHERE id = $1`, organizationID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
