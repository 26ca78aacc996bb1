package sessions

import (
	"time"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
	"github.com/patrickmn/go-cache"
)

// CacheRepo is an in-process session repository. Sessions expire after maxAge of inactivity
// and never survive a process restart.
type CacheRepo struct {
	sessions *cache.Cache
}

var _ Repo = (*CacheRepo)(nil)

// NewCacheRepo creates a session repository whose entries live for maxAge after their last write
func NewCacheRepo(maxAge time.Duration) *CacheRepo {
	return &CacheRepo{
		sessions: cache.New(maxAge, maxAge/2),
	}
}

// Upsert creates or replaces a session, resetting its expiry
func (r *CacheRepo) Upsert(session *Session) error {
	if session == nil || session.ID == "" {
		return apperrors.ErrInvalidSession
	}
	// Store a copy so later mutations by the caller are only visible after the next Upsert
	stored := *session
	r.sessions.Set(session.ID, stored, cache.DefaultExpiration)
	return nil
}

// Get retrieves a copy of a session by ID
func (r *CacheRepo) Get(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrInvalidSession
	}
	v, ok := r.sessions.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	session := v.(Session)
	return &session, nil
}

// Delete removes a session; deleting an unknown session is not an error
func (r *CacheRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return apperrors.ErrInvalidSession
	}
	r.sessions.Delete(sessionID)
	return nil
}
