package service

import (
	"context"
	"errors"
	"log"

	"github.com/birdband/backend/internal/model"
)

var (
	// ErrInvalidCredentials is deliberately undifferentiated: callers cannot
	// tell whether the identifier or the password was wrong.
	ErrInvalidCredentials = errors.New("incorrect email/username or password")
	ErrAccountDisabled    = errors.New("user is disabled")
)

// UserStore is the user-lookup capability the auth core needs from storage.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenPair is the outcome of a successful login or refresh. The transport
// layer decides how the two tokens reach the client (HttpOnly cookies here).
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	UserID       int64
	Email        string
	RememberMe   bool
}

type AuthService struct {
	users  UserStore
	tokens *TokenCodec
}

func NewAuthService(users UserStore, tokens *TokenCodec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Tokens() *TokenCodec {
	return s.tokens
}

// Login resolves the identifier as email first, then username, verifies the
// password and issues a fresh access/refresh pair. rememberMe stretches the
// refresh TTL to the extended tier and is recorded in the refresh token.
func (s *AuthService) Login(ctx context.Context, identifier, password string, rememberMe bool) (*TokenPair, error) {
	user, err := s.users.GetUserByEmail(ctx, identifier)
	if err != nil {
		user, err = s.users.GetUserByUsername(ctx, identifier)
	}
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	if user.Disabled {
		return nil, ErrAccountDisabled
	}

	return s.issuePair(user.Email, user.ID, rememberMe)
}

// Refresh mints a brand-new token pair from a valid refresh token. The
// remember-me preference is carried forward. The consumed refresh token is
// not revoked; it simply falls out of use and expires naturally.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.tokens.Verify(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh || claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return s.issuePair(claims.Subject, claims.UserID, claims.RememberMe)
}

// Logout revokes the access token if one is present. Revocation is
// best-effort: a store failure must not stop the client from clearing its
// session.
func (s *AuthService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if !s.tokens.RevokeToken(ctx, accessToken) {
		log.Printf("logout: token revocation was a no-op")
	}
}

// Authenticate verifies an access token and returns the minimal identity for
// downstream authorization.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*model.AuthUser, error) {
	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.tokens.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess || claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return &model.AuthUser{ID: claims.UserID, Email: claims.Subject}, nil
}

func (s *AuthService) issuePair(email string, userID int64, rememberMe bool) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccess(email, userID, 0)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(email, userID, rememberMe, 0)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       userID,
		Email:        email,
		RememberMe:   rememberMe,
	}, nil
}
