package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleBreeder   = "breeder"
	RoleOwner     = "owner"
)

var validRoleNames = map[string]struct{}{
	RoleAdmin:     {},
	RoleUser:      {},
	RoleModerator: {},
	RoleBreeder:   {},
	RoleOwner:     {},
}

func IsValidRoleName(name string) bool {
	_, ok := validRoleNames[name]
	return ok
}

type Role struct {
	ID          int64     `json:"id"`
	RoleName    string    `json:"role_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserRole struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RoleID     int64     `json:"role_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

type RoleCreateRequest struct {
	RoleName    string  `json:"role_name" binding:"required"`
	Description *string `json:"description"`
}

type RoleUpdateRequest struct {
	Description *string `json:"description"`
}
