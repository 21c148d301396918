package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goliatone/go-formflow/pkg/api"
)

// ErrNotAuthenticated is returned when an operation needs a signed-in user.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Authenticator exchanges credentials for a user and token.
type Authenticator interface {
	CreateSession(ctx context.Context, creds api.Credentials) (api.Auth, error)
}

// AuthenticatorFunc adapts a function into an Authenticator.
type AuthenticatorFunc func(ctx context.Context, creds api.Credentials) (api.Auth, error)

// CreateSession implements Authenticator.
func (fn AuthenticatorFunc) CreateSession(ctx context.Context, creds api.Credentials) (api.Auth, error) {
	return fn(ctx, creds)
}

// Option configures a Store.
type Option func(*Store)

// WithFile persists the session to path. Existing state is loaded by
// NewStore.
func WithFile(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// WithClock overrides the clock used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the authentication context.
type Store struct {
	mu     sync.RWMutex
	user   *api.User
	token  string
	auth   Authenticator
	path   string
	now    func() time.Time
	logger *slog.Logger
}

type persisted struct {
	User  api.User `json:"user"`
	Token string   `json:"token"`
}

// NewStore builds a store signing in through auth. When a file is
// configured its contents are loaded; an expired token is discarded.
func NewStore(auth Authenticator, options ...Option) (*Store, error) {
	s := &Store{
		auth:   auth,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// User returns the signed-in user.
func (s *Store) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a user is signed in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SignIn authenticates creds and replaces the session on success. A failure
// to persist the session is logged; the in-memory session stays signed in.
func (s *Store) SignIn(ctx context.Context, creds api.Credentials) error {
	if s.auth == nil {
		return errors.New("session: authenticator is not configured")
	}
	auth, err := s.auth.CreateSession(ctx, creds)
	if err != nil {
		return fmt.Errorf("session: sign in: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := auth.User
	s.user = &user
	s.token = auth.Token
	if err := s.saveLocked(); err != nil {
		s.logger.Warn("session not persisted", "path", s.path, "error", err)
	}
	return nil
}

// UpdateUser replaces the stored user wholesale.
func (s *Store) UpdateUser(user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}
	s.user = &user
	return s.saveLocked()
}

// SignOut clears the session and removes the persisted file.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) load() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var state persisted
	if err := json.Unmarshal(raw, &state); err != nil {
		return fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	if state.Token == "" || Expired(state.Token, s.now()) {
		s.logger.Info("discarding stored session", "path", s.path)
		return nil
	}
	s.user = &state.User
	s.token = state.Token
	return nil
}

func (s *Store) saveLocked() error {
	if s.path == "" || s.user == nil {
		return nil
	}
	raw, err := json.MarshalIndent(persisted{User: *s.user, Token: s.token}, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace %s: %w", s.path, err)
	}
	return nil
}

// Expired reports whether token is a JWT whose exp claim is at or before now.
// Tokens that are not JWTs, or carry no exp claim, never expire locally. The
// signature is not verified; the API remains the authority.
func Expired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
