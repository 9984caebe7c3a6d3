package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdband/backend/internal/config"
)

// fakeStore is an in-memory Store. down simulates an unreachable Redis and
// exercises the asymmetric failure policy.
type fakeStore struct {
	revoked map[string]time.Duration
	cached  map[string]string
	down    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		revoked: make(map[string]time.Duration),
		cached:  make(map[string]string),
	}
}

func (f *fakeStore) Revoke(ctx context.Context, jti string, ttl time.Duration) bool {
	if ttl <= 0 || f.down {
		return false
	}
	f.revoked[jti] = ttl
	return true
}

func (f *fakeStore) IsRevoked(ctx context.Context, jti string) bool {
	if f.down {
		return true
	}
	_, ok := f.revoked[jti]
	return ok
}

func (f *fakeStore) CacheGet(ctx context.Context, key string) (string, bool) {
	if f.down {
		return "", false
	}
	val, ok := f.cached[key]
	return val, ok
}

func (f *fakeStore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) bool {
	if f.down {
		return false
	}
	f.cached[key] = value
	return true
}

func (f *fakeStore) CacheDelete(ctx context.Context, key string) bool {
	if f.down {
		return false
	}
	delete(f.cached, key)
	return true
}

func (f *fakeStore) CacheFlush(ctx context.Context) (int64, bool) {
	if f.down {
		return 0, false
	}
	n := int64(len(f.cached))
	f.cached = make(map[string]string)
	return n, true
}

func (f *fakeStore) CacheKeyCount(ctx context.Context) (int64, bool) {
	if f.down {
		return 0, false
	}
	return int64(len(f.cached)), true
}

func (f *fakeStore) Info(ctx context.Context) (string, error) {
	if f.down {
		return "", errors.New("store down")
	}
	return "# Server", nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.down {
		return errors.New("store down")
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SecretKey:            "0123456789abcdef0123456789abcdef",
		Algorithm:            "HS256",
		AccessTTLMinutes:     "30",
		RefreshTTLMinutes:    "10080",
		RememberMeTTLMinutes: "43200",
	}
}

func newTestCodec(t *testing.T, store *fakeStore) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testAuthConfig(), store)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return codec
}

func TestNewTokenCodecRejectsBadConfig(t *testing.T) {
	store := newFakeStore()

	cfg := testAuthConfig()
	cfg.SecretKey = "too-short"
	if _, err := NewTokenCodec(cfg, store); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("short secret: got %v", err)
	}

	cfg = testAuthConfig()
	cfg.Algorithm = "RS256"
	if _, err := NewTokenCodec(cfg, store); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("wrong algorithm: got %v", err)
	}

	cfg = testAuthConfig()
	cfg.AccessTTLMinutes = "zero"
	if _, err := NewTokenCodec(cfg, store); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("bad minutes: got %v", err)
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	codec := newTestCodec(t, newFakeStore())

	token, err := codec.IssueAccess("alice@example.com", 42, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := codec.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Subject != "alice@example.com" {
		t.Fatalf("claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("type = %q", claims.TokenType)
	}
	if claims.ID == "" {
		t.Fatalf("missing jti")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t, newFakeStore())

	token, err := codec.IssueAccess("alice@example.com", 42, time.Nanosecond)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := codec.Verify(context.Background(), token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	codec := newTestCodec(t, newFakeStore())

	token, err := codec.IssueAccess("alice@example.com", 42, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := codec.Verify(context.Background(), tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}

	other, err := NewTokenCodec(config.AuthConfig{
		SecretKey:            "ffffffffffffffffffffffffffffffff",
		Algorithm:            "HS256",
		AccessTTLMinutes:     "30",
		RefreshTTLMinutes:    "10080",
		RememberMeTTLMinutes: "43200",
	}, newFakeStore())
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	if _, err := other.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("cross-key verify: got %v, want ErrInvalidToken", err)
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	store := newFakeStore()
	codec := newTestCodec(t, store)

	token, err := codec.IssueAccess("alice@example.com", 42, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !codec.RevokeToken(context.Background(), token) {
		t.Fatalf("revoke failed")
	}

	if _, err := codec.Verify(context.Background(), token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("got %v, want ErrTokenRevoked", err)
	}
}

func TestRevocationTTLMatchesRemainingValidity(t *testing.T) {
	store := newFakeStore()
	codec := newTestCodec(t, store)

	token, err := codec.IssueAccess("alice@example.com", 42, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !codec.RevokeToken(context.Background(), token) {
		t.Fatalf("revoke failed")
	}

	for _, ttl := range store.revoked {
		if ttl <= 0 || ttl > 10*time.Minute {
			t.Fatalf("revocation ttl %v outside remaining validity", ttl)
		}
	}
}

func TestRevokeExpiredTokenIsNoOp(t *testing.T) {
	store := newFakeStore()
	codec := newTestCodec(t, store)

	token, err := codec.IssueAccess("alice@example.com", 42, time.Nanosecond)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if codec.RevokeToken(context.Background(), token) {
		t.Fatalf("expected no-op for expired token")
	}
	if len(store.revoked) != 0 {
		t.Fatalf("expired token left a revocation entry")
	}
}

func TestUnreachableStoreFailsClosed(t *testing.T) {
	store := newFakeStore()
	codec := newTestCodec(t, store)

	token, err := codec.IssueAccess("alice@example.com", 42, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	store.down = true
	if _, err := codec.Verify(context.Background(), token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("got %v, want ErrTokenRevoked when store is down", err)
	}
}

func TestDecodeExpiredAcceptsExpiredSignature(t *testing.T) {
	codec := newTestCodec(t, newFakeStore())

	token, err := codec.IssueAccess("alice@example.com", 42, time.Nanosecond)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	claims, err := codec.DecodeExpired(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("claims: %+v", claims)
	}

	if _, err := codec.DecodeExpired("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage decode: got %v", err)
	}
}

func TestRefreshTokenTTLTiers(t *testing.T) {
	codec := newTestCodec(t, newFakeStore())

	cases := []struct {
		name       string
		rememberMe bool
		override   time.Duration
		want       time.Duration
	}{
		{"default tier", false, 0, codec.RefreshTTL()},
		{"remember-me tier", true, 0, codec.RememberMeTTL()},
		{"override beats remember-me", true, time.Hour, time.Hour},
	}

	for _, tc := range cases {
		token, err := codec.IssueRefresh("alice@example.com", 42, tc.rememberMe, tc.override)
		if err != nil {
			t.Fatalf("%s: issue: %v", tc.name, err)
		}
		claims, err := codec.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("%s: verify: %v", tc.name, err)
		}
		if claims.RememberMe != tc.rememberMe {
			t.Fatalf("%s: remember_me = %v", tc.name, claims.RememberMe)
		}

		got := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if got != tc.want {
			t.Fatalf("%s: ttl = %v, want %v", tc.name, got, tc.want)
		}
	}
}
