// ABOUTME: Session management service correlating clients to signed credentials
// ABOUTME: Stores and retrieves auth sessions using the cache backend

package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/markalston/bookshelf/cache"
	"github.com/markalston/bookshelf/models"
)

// ErrSessionNotFound indicates the session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionService manages server-side authentication sessions. A session holds
// the signed credential so only the opaque session ID reaches the client.
type SessionService struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionService creates a session service. Sessions live slightly longer
// than the credential they carry so an expired token is observable as an
// auth failure rather than a silent session miss.
func NewSessionService(c *cache.Cache, tokenTTL time.Duration) *SessionService {
	return &SessionService{cache: c, ttl: tokenTTL + time.Minute}
}

// Create generates a new session holding the signed token and stores it in
// the cache. A user has at most one live session: re-login replaces the
// previous one, so a cookie from an earlier login stops working the moment
// its owner logs in again. Returns the session including its
// cryptographically secure ID.
func (s *SessionService) Create(username, token string) (*models.Session, error) {
	sessionID, err := randomToken()
	if err != nil {
		return nil, err
	}
	csrfToken, err := randomToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        sessionID,
		Username:  username,
		Token:     token,
		CSRFToken: csrfToken,
		CreatedAt: time.Now(),
	}

	if prev, ok := s.cache.Get(userKey(username)); ok {
		if prevID, ok := prev.(string); ok {
			s.cache.Clear(sessionKey(prevID))
		}
	}

	s.cache.Set(sessionKey(sessionID), session, s.ttl)
	s.cache.Set(userKey(username), sessionID, s.ttl)

	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(sessionID string) (*models.Session, error) {
	val, ok := s.cache.Get(sessionKey(sessionID))
	if !ok {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*models.Session)
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// randomToken returns 32 bytes of cryptographically secure random data,
// base64url encoded.
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// sessionKey returns the cache key for a session ID
func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// userKey returns the cache key tracking a user's current session ID
func userKey(username string) string {
	return "user_session:" + username
}
