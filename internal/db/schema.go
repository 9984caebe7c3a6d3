package db

import "context"

// EnsureSchema creates the registry tables if they do not exist yet. Safe to
// run on every startup.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT,
			disabled BOOLEAN NOT NULL DEFAULT FALSE,
			hashed_password TEXT NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS role (
			id BIGSERIAL PRIMARY KEY,
			role_name TEXT NOT NULL UNIQUE,
			description VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS user_role (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id BIGINT NOT NULL REFERENCES role(id) ON DELETE CASCADE,
			assigned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, role_id)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS breeder (
			id BIGSERIAL PRIMARY KEY,
			breeder_code VARCHAR(80) NOT NULL UNIQUE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS owner (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS organization (
			id BIGSERIAL PRIMARY KEY,
			organization_code VARCHAR(100) NOT NULL UNIQUE,
			organization_name VARCHAR(100) NOT NULL,
			organization_alias VARCHAR(20),
			address VARCHAR(200),
			country_code VARCHAR(20),
			country_name VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS bird (
			id BIGSERIAL PRIMARY KEY,
			band_id VARCHAR(100) NOT NULL UNIQUE,
			name VARCHAR(80),
			dob TIMESTAMPTZ,
			sex VARCHAR(1),
			father_id BIGINT REFERENCES bird(id),
			mother_id BIGINT REFERENCES bird(id),
			breeder_id BIGINT REFERENCES breeder(id),
			owner_id BIGINT REFERENCES owner(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS bird_breeder_id_idx ON bird(breeder_id)`,
		`CREATE INDEX IF NOT EXISTS bird_owner_id_idx ON bird(owner_id)`,
		`
		CREATE TABLE IF NOT EXISTS pairs (
			id BIGSERIAL PRIMARY KEY,
			season INT NOT NULL,
			round INT NOT NULL,
			cock BIGINT NOT NULL REFERENCES bird(id),
			hen BIGINT NOT NULL REFERENCES bird(id),
			date_paired TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			number_eggs INT,
			number_fertile_eggs INT,
			incubation_start TIMESTAMPTZ,
			incubation_end TIMESTAMPTZ,
			band_date TIMESTAMPTZ,
			number_of_offspring INT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT uq_pairs_cock_hen_season_round UNIQUE (cock, hen, season, round)
		)
		`,
		`CREATE INDEX IF NOT EXISTS pairs_season_idx ON pairs(season)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
