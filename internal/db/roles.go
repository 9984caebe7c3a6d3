package db

import (
	"context"

	"github.com/birdband/backend/internal/model"
)

const roleColumns = `id, role_name, description, created_at, updated_at`

func scanRole(row interface{ Scan(dest ...any) error }) (*model.Role, error) {
	var role model.Role
	err := row.Scan(
		&role.ID,
		&role.RoleName,
		&role.Description,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (db *Postgres) CreateRole(ctx context.Context, roleName string, description *string) (*model.Role, error) {
	query := `
		INSERT INTO role (role_name, description)
		VALUES ($1, $2)
		RETURNING ` + roleColumns
	return scanRole(db.Pool.QueryRow(ctx, query, roleName, description))
}

func (db *Postgres) GetRoleByID(ctx context.Context, roleID int64) (*model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM role WHERE id = $1`
	return scanRole(db.Pool.QueryRow(ctx, query, roleID))
}

func (db *Postgres) GetRoleByName(ctx context.Context, roleName string) (*model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM role WHERE role_name = $1`
	return scanRole(db.Pool.QueryRow(ctx, query, roleName))
}

func (db *Postgres) ListRoles(ctx context.Context, skip, limit int) ([]model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM role ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []model.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

func (db *Postgres) UpdateRole(ctx context.Context, roleID int64, description *string) (*model.Role, error) {
	query := `
		UPDATE role
		SET description = COALESCE($2, description), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + roleColumns
	return scanRole(db.Pool.QueryRow(ctx, query, roleID, description))
}

func (db *Postgres) DeleteRole(ctx context.Context, roleID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM role WHERE id = $1`, roleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) CountRoles(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM role`).Scan(&count)
	return count, err
}

func (db *Postgres) AssignRoleToUser(ctx context.Context, userID, roleID int64) (*model.UserRole, error) {
	query := `
		INSERT INTO user_role (user_id, role_id)
		VALUES ($1, $2)
		RETURNING id, user_id, role_id, assigned_at`
	var ur model.UserRole
	err := db.Pool.QueryRow(ctx, query, userID, roleID).Scan(
		&ur.ID,
		&ur.UserID,
		&ur.RoleID,
		&ur.AssignedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ur, nil
}

func (db *Postgres) RemoveRoleFromUser(ctx context.Context, userID, roleID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM user_role WHERE user_id = $1 AND role_id = $2`, userID, roleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) GetUserRoles(ctx context.Context, userID int64) ([]model.Role, error) {
	query := `
		SELECT r.id, r.role_name, r.description, r.created_at, r.updated_at
		FROM role r
		JOIN user_role ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []model.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

func (db *Postgres) UserHasRole(ctx context.Context, userID int64, roleName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM user_role ur
			JOIN role r ON r.id = ur.role_id
			WHERE ur.user_id = $1 AND r.role_name = $2
		)`
	var has bool
	err := db.Pool.QueryRow(ctx, query, userID, roleName).Scan(&has)
	return has, err
}
