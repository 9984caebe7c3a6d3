package service

import (
	"context"
	"fmt"

	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/model"
)

type UserService struct {
	repo *db.Postgres
}

func NewUserService(repo *db.Postgres) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user with a bcrypt-hashed password. The plaintext never
// reaches storage.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Username, req.Email, req.FullName, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.repo.ListUsers(ctx, skip, limit)
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req model.UserUpdateRequest) (*model.User, error) {
	var passwordHash *string
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	user, err := s.repo.UpdateUser(ctx, userID, req.Email, req.FullName, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	return s.repo.DeleteUser(ctx, userID)
}

func (s *UserService) SetUserDisabled(ctx context.Context, userID int64, disabled bool) (*model.User, error) {
	return s.repo.SetUserDisabled(ctx, userID, disabled)
}
