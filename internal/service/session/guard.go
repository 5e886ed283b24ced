// Package session gates the admin surface. The guard is an explicit
// session object: login stores the backend token, logout or an
// unauthorized backend response clears it, and admin entry is checked
// against it on every request.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"

	"handestiy-storefront/internal/repository/credential"
)

// Authenticator exchanges admin credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Guard tracks the admin token. Two states: unauthenticated (no token)
// and authenticated (token held). Tokens are never expired on a timer.
type Guard struct {
	repo   credential.Repository
	logger *log.Logger

	mu    sync.RWMutex
	token string
}

// NewGuard restores a persisted token, if any. A failed restore starts
// unauthenticated.
func NewGuard(repo credential.Repository, logger *log.Logger) *Guard {
	g := &Guard{repo: repo, logger: logger}
	token, err := repo.Load()
	if err != nil {
		logger.Printf("restore admin session: starting unauthenticated: %v", err)
		token = ""
	}
	g.token = token
	return g
}

// Login authenticates against the backend and stores the returned
// token for the rest of the process lifetime.
func (g *Guard) Login(ctx context.Context, auth Authenticator, email, password string) error {
	token, err := auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("admin login: %w", err)
	}
	g.set(token)
	return nil
}

// Logout clears the session explicitly.
func (g *Guard) Logout() {
	g.set("")
}

// Invalidate drops the session after the backend rejected the token,
// demoting the guard to unauthenticated so the next admin entry
// redirects to login.
func (g *Guard) Invalidate() {
	g.logger.Printf("admin token rejected by backend, session invalidated")
	g.set("")
}

// Token returns the current token, "" when unauthenticated. Admin
// requests attach it as a bearer credential.
func (g *Guard) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *Guard) Authenticated() bool {
	return g.Token() != ""
}

func (g *Guard) set(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()

	var err error
	if token == "" {
		err = g.repo.Clear()
	} else {
		err = g.repo.Save(token)
	}
	if err != nil {
		g.logger.Printf("persist admin session: %v", err)
	}
}
