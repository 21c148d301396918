package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/session"
)

var ada = api.User{ID: "u1", Name: "Ada", Email: "a@b.com", AvatarURL: "http://cdn/a.png"}

func staticAuth(token string) session.AuthenticatorFunc {
	return func(_ context.Context, creds api.Credentials) (api.Auth, error) {
		if creds.Email != "a@b.com" || creds.Password != "secret" {
			return api.Auth{}, errors.New("invalid credentials")
		}
		return api.Auth{User: ada, Token: token}, nil
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestStore_SignInAndUpdate(t *testing.T) {
	store, err := session.NewStore(staticAuth("tok"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if store.Authenticated() {
		t.Fatalf("expected fresh store to be signed out")
	}

	if err := store.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	user, ok := store.User()
	if !ok {
		t.Fatalf("expected signed in user")
	}
	if diff := cmp.Diff(ada, user); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
	if store.Token() != "tok" {
		t.Fatalf("unexpected token %q", store.Token())
	}

	updated := api.User{ID: "u1", Name: "Grace", Email: "g@b.com"}
	if err := store.UpdateUser(updated); err != nil {
		t.Fatalf("update user: %v", err)
	}
	user, _ = store.User()
	if diff := cmp.Diff(updated, user); diff != "" {
		t.Fatalf("replacement mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SignInFailureKeepsState(t *testing.T) {
	store, _ := session.NewStore(staticAuth("tok"))
	err := store.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "wrong"})
	if err == nil {
		t.Fatalf("expected sign in error")
	}
	if store.Authenticated() {
		t.Fatalf("expected store to remain signed out")
	}
}

func TestStore_UpdateUserRequiresSession(t *testing.T) {
	store, _ := session.NewStore(nil)
	if err := store.UpdateUser(ada); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	token := signedToken(t, time.Now().Add(time.Hour))

	first, err := session.NewStore(staticAuth(token), session.WithFile(path))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := first.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	second, err := session.NewStore(nil, session.WithFile(path))
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	user, ok := second.User()
	if !ok || user.Name != "Ada" {
		t.Fatalf("expected persisted user, got %+v (ok=%v)", user, ok)
	}
	if second.Token() != token {
		t.Fatalf("expected persisted token")
	}

	if err := second.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected session file removed, stat err=%v", err)
	}
	if second.Authenticated() || second.Token() != "" {
		t.Fatalf("expected cleared session")
	}
}

func TestStore_SignInSurvivesUnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	path := filepath.Join(blocker, "session.json")

	store, err := session.NewStore(staticAuth("tok"), session.WithFile(path))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if !store.Authenticated() || store.Token() != "tok" {
		t.Fatalf("expected in-memory session after failed save")
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no session file at %s", path)
	}
}

func TestStore_DiscardsExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, now.Add(-time.Minute))

	first, _ := session.NewStore(staticAuth(token), session.WithFile(path))
	if err := first.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	second, err := session.NewStore(nil, session.WithFile(path), session.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	if second.Authenticated() {
		t.Fatalf("expected expired session to be discarded")
	}
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "opaque", token: "not-a-jwt", want: false},
		{name: "future", token: signedToken(t, now.Add(time.Hour)), want: false},
		{name: "past", token: signedToken(t, now.Add(-time.Hour)), want: true},
		{name: "exact", token: signedToken(t, now), want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.Expired(tc.token, now); got != tc.want {
				t.Fatalf("Expired() = %v, want %v", got, tc.want)
			}
		})
	}
}
