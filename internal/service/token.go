package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	minSecretKeyLength = 32
)

var (
	ErrMisconfigured = errors.New("auth config invalid")

	// ErrInvalidToken covers signature failures, malformed tokens and wrong
	// token types. ErrTokenExpired and ErrTokenRevoked are distinguished for
	// logging only; handlers collapse all three into one unauthorized
	// response so callers cannot probe which check failed.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// TokenClaims is the signed claim set carried by both token kinds. The jti
// (RegisteredClaims.ID) is the revocation key.
type TokenClaims struct {
	UserID     int64  `json:"user_id"`
	TokenType  string `json:"type"`
	RememberMe bool   `json:"remember_me,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies the registry's JWTs. Verification consults
// the revocation store, so a token can be invalidated before its natural
// expiry.
type TokenCodec struct {
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	rememberMeTTL time.Duration
	store         cache.Store
}

func NewTokenCodec(cfg config.AuthConfig, store cache.Store) (*TokenCodec, error) {
	if len(cfg.SecretKey) < minSecretKeyLength {
		return nil, fmt.Errorf("%w: SECRET_KEY must be at least %d characters", ErrMisconfigured, minSecretKeyLength)
	}
	if cfg.Algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("%w: unsupported JWT_ALGORITHM %q", ErrMisconfigured, cfg.Algorithm)
	}

	accessTTL, err := parseMinutes(cfg.AccessTTLMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ACCESS_TOKEN_EXPIRES_MINUTES", ErrMisconfigured)
	}
	refreshTTL, err := parseMinutes(cfg.RefreshTTLMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid REFRESH_TOKEN_EXPIRES_MINUTES", ErrMisconfigured)
	}
	rememberMeTTL, err := parseMinutes(cfg.RememberMeTTLMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid REMEMBER_ME_REFRESH_TOKEN_EXPIRES_MINUTES", ErrMisconfigured)
	}

	return &TokenCodec{
		secret:        []byte(cfg.SecretKey),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		rememberMeTTL: rememberMeTTL,
		store:         store,
	}, nil
}

func parseMinutes(raw string) (time.Duration, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("invalid minutes value %q", raw)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func (c *TokenCodec) AccessTTL() time.Duration     { return c.accessTTL }
func (c *TokenCodec) RefreshTTL() time.Duration    { return c.refreshTTL }
func (c *TokenCodec) RememberMeTTL() time.Duration { return c.rememberMeTTL }

// IssueAccess mints an access token. ttlOverride of zero uses the configured
// access TTL.
func (c *TokenCodec) IssueAccess(sub string, userID int64, ttlOverride time.Duration) (string, error) {
	ttl := c.accessTTL
	if ttlOverride > 0 {
		ttl = ttlOverride
	}
	return c.sign(TokenClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
	}, sub, ttl)
}

// IssueRefresh mints a refresh token. Effective TTL precedence: explicit
// override, then the remember-me tier, then the default tier.
func (c *TokenCodec) IssueRefresh(sub string, userID int64, rememberMe bool, ttlOverride time.Duration) (string, error) {
	ttl := c.refreshTTL
	switch {
	case ttlOverride > 0:
		ttl = ttlOverride
	case rememberMe:
		ttl = c.rememberMeTTL
	}
	return c.sign(TokenClaims{
		UserID:     userID,
		TokenType:  TokenTypeRefresh,
		RememberMe: rememberMe,
	}, sub, ttl)
}

func (c *TokenCodec) sign(claims TokenClaims, sub string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   sub,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry, then the revocation store. The store
// fails closed, so an unreachable store reads as revoked.
func (c *TokenCodec) Verify(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	if c.store.IsRevoked(ctx, claims.ID) {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// DecodeExpired validates the signature but ignores expiry. Logout uses it so
// an already-expired token can still be revoked.
func (c *TokenCodec) DecodeExpired(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, c.keyFunc)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RevokeToken records the token's jti in the revocation store with a TTL
// equal to the token's remaining validity. Already-expired tokens are a
// no-op. Best-effort: a store failure returns false and nothing else.
func (c *TokenCodec) RevokeToken(ctx context.Context, tokenString string) bool {
	claims, err := c.DecodeExpired(tokenString)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return false
	}
	return c.store.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return c.secret, nil
}
