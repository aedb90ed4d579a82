// Package session holds the signed-in identity. It is created once at the
// composition root and handed to every consumer that needs the token or the
// current user/provider id; nothing reads auth state from globals.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"bellavie/api"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionExpired is returned when the held token's exp claim has passed.
var ErrSessionExpired = errors.New("session expired")

// ErrNoSession is returned when no one is signed in.
var ErrNoSession = errors.New("not signed in")

// Session is a concurrency-safe holder for the bearer token and identity.
type Session struct {
	mu         sync.RWMutex
	token      string
	userID     string
	providerID string
	expiresAt  time.Time
}

// New returns an empty (signed-out) session.
func New() *Session {
	return &Session{}
}

// SignIn exchanges credentials for a token via the API and stores it.
func (s *Session) SignIn(ctx context.Context, client *api.Client, email, password string) error {
	res, err := client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return s.Accept(res.Token, res.UserID, res.ProviderID)
}

// Accept installs an externally obtained token. The expiry is read with an
// unverified parse: signature verification is the identity provider's job,
// the client only needs to know when to send the user back to login.
func (s *Session) Accept(token, userID, providerID string) error {
	expiresAt := time.Time{}
	if claims, err := parseExpiry(token); err == nil {
		expiresAt = claims
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.providerID = providerID
	s.expiresAt = expiresAt
	return nil
}

// SignOut clears the session. The server-side revocation is the caller's
// responsibility (api.SignOut) so a network failure never strands the UI in a
// half signed-out state.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.providerID = ""
	s.expiresAt = time.Time{}
}

// Token implements middleware.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the signed-in user's id, or ErrNoSession / ErrSessionExpired.
func (s *Session) UserID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.userID, nil
}

// ProviderID returns the contractor profile id attached to this account, or
// ErrNoSession when the account has none. The credits dashboard reads the id
// from here, never from a literal.
func (s *Session) ProviderID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.providerID == "" {
		return "", ErrNoSession
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.providerID, nil
}

func parseExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return exp.Time, nil
}
