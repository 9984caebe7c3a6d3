package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const userColumns = `id, username, email, full_name, disabled, hashed_password`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.Disabled,
		&user.HashedPassword,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) CreateUser(ctx context.Context, username, email string, fullName *string, passwordHash string) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, full_name, hashed_password)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, username, email, fullName, passwordHash))
}

func (db *Postgres) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, userID))
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, email))
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, username))
}

func (db *Postgres) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUser patches the given fields; nil pointers leave the column as is.
func (db *Postgres) UpdateUser(ctx context.Context, userID int64, email, fullName, passwordHash *string) (*model.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($2, email),
		    full_name = COALESCE($3, full_name),
		    hashed_password = COALESCE($4, hashed_password)
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, userID, email, fullName, passwordHash))
}

func (db *Postgres) SetUserDisabled(ctx context.Context, userID int64, disabled bool) (*model.User, error) {
	query := `UPDATE users SET disabled = $2 WHERE id = $1 RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, userID, disabled))
}

func (db *Postgres) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (db *Postgres) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE disabled = FALSE`).Scan(&count)
	return count, err
}
