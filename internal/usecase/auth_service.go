package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"

	"github.com/hasysamur-cmd/cosmus-league/internal/platform/id"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

// AuthService turns the shared-secret login into bearer session tokens.
// Sessions live in memory only and are never part of the persisted snapshot.
type AuthService struct {
	store  *store.Store
	ids    id.Generator
	logger *logging.Logger

	mu       sync.RWMutex
	sessions map[string]struct{}
}

func NewAuthService(st *store.Store, ids id.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		store:    st,
		ids:      ids,
		logger:   logger,
		sessions: make(map[string]struct{}),
	}
}

// Login checks the password against the stored settings. A wrong password is
// ok=false, not an error: authentication failure is a boolean outcome here.
func (s *AuthService) Login(ctx context.Context, password string) (string, bool, error) {
	expected := s.store.View().Settings.AdminPassword
	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		s.logger.WarnContext(ctx, "admin login rejected")
		return "", false, nil
	}

	token, err := s.ids.NewID()
	if err != nil {
		return "", false, fmt.Errorf("generate session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[token] = struct{}{}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "admin session opened")
	return token, true, nil
}

func (s *AuthService) Logout(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// VerifySession implements the admin gate for the HTTP layer.
func (s *AuthService) VerifySession(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty session token", ErrUnauthorized)
	}

	s.mu.RLock()
	_, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: unknown session token", ErrUnauthorized)
	}
	return nil
}
