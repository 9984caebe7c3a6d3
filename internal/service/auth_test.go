package service

import (
	"context"
	"errors"
	"testing"

	"github.com/birdband/backend/internal/model"
)

type fakeUserStore struct {
	byEmail    map[string]*model.User
	byUsername map[string]*model.User
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("no rows")
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, errors.New("no rows")
}

func newTestAuthService(t *testing.T, store *fakeStore) (*AuthService, *fakeUserStore) {
	t.Helper()

	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: hash,
	}
	users := &fakeUserStore{
		byEmail:    map[string]*model.User{user.Email: user},
		byUsername: map[string]*model.User{user.Username: user},
	}

	codec := newTestCodec(t, store)
	return NewAuthService(users, codec), users
}

func TestLoginByEmailAndUsername(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())

	for _, identifier := range []string{"alice@example.com", "alice"} {
		pair, err := svc.Login(context.Background(), identifier, "correct-horse", false)
		if err != nil {
			t.Fatalf("login %q: %v", identifier, err)
		}
		if pair.UserID != 7 || pair.Email != "alice@example.com" {
			t.Fatalf("pair: %+v", pair)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatalf("missing tokens")
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())

	if _, err := svc.Login(context.Background(), "alice", "wrong", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "correct-horse", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", err)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	svc, users := newTestAuthService(t, newFakeStore())
	users.byEmail["alice@example.com"].Disabled = true

	if _, err := svc.Login(context.Background(), "alice@example.com", "correct-horse", false); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("got %v, want ErrAccountDisabled", err)
	}

	// Wrong password on a disabled account must not reveal the account state.
	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateAfterLogin(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())

	pair, err := svc.Login(context.Background(), "alice", "correct-horse", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != 7 || user.Email != "alice@example.com" {
		t.Fatalf("auth user: %+v", user)
	}
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())

	pair, err := svc.Login(context.Background(), "alice", "correct-horse", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh as access: got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access as refresh: got %v", err)
	}
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "alice", "correct-horse", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout(context.Background(), pair.AccessToken)

	if _, err := svc.Authenticate(context.Background(), pair.AccessToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("got %v, want ErrTokenRevoked after logout", err)
	}
}

func TestRefreshCarriesRememberMeForward(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())

	pair, err := svc.Login(context.Background(), "alice", "correct-horse", true)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !pair.RememberMe {
		t.Fatalf("remember_me lost at login")
	}

	refreshed, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !refreshed.RememberMe {
		t.Fatalf("remember_me lost on refresh")
	}
	if refreshed.AccessToken == pair.AccessToken || refreshed.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh reused a token")
	}

	// The consumed refresh token is not rotated out; it stays valid until
	// natural expiry.
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("reusing refresh token: %v", err)
	}
}

func TestRefreshRejectsEmptyToken(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeStore())
	if _, err := svc.Refresh(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v", err)
	}
}
