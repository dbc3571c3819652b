package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("cache: session not found")

// SessionStore persists respondent sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// redisSessionStore keeps sessions in Redis with a sliding TTL so
// abandoned runs expire on their own.
type redisSessionStore struct {
	cache CacheService
	ttl   time.Duration
}

func NewRedisSessionStore(cache CacheService, ttl time.Duration) SessionStore {
	return &redisSessionStore{cache: cache, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "quiz:session:" + sessionID
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	return s.cache.Set(ctx, sessionKey(session.ID), session, s.ttl)
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	if err := s.cache.Get(ctx, sessionKey(sessionID), &session); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKey(sessionID))
}

// MemorySessionStore is an in-process implementation used in tests and
// single-node development setups.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	copied.Fields = session.Fields.Clone()
	copied.Visits = append([]models.StageVisit(nil), session.Visits...)
	s.sessions[session.ID] = &copied
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	copied.Fields = session.Fields.Clone()
	copied.Visits = append([]models.StageVisit(nil), session.Visits...)
	return &copied, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
