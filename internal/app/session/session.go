package session

import (
  "context"
  "errors"
  "sync"
  "time"

  "github.com/ushakovn/sumki/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one session per user. Implementations return copies: a loaded
// session is never shared with the store.
type Store interface {
  Load(ctx context.Context, userId models.UserId) (*models.Session, error)
  Save(ctx context.Context, session *models.Session) error
  Delete(ctx context.Context, userId models.UserId) error
}

type MemoryStore struct {
  mu       sync.RWMutex
  sessions map[models.UserId]*models.Session
  ttl      time.Duration
}

// NewMemoryStore keeps sessions in process memory. Zero ttl disables expiration.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
  return &MemoryStore{
    sessions: make(map[models.UserId]*models.Session),
    ttl:      ttl,
  }
}

func (s *MemoryStore) Load(_ context.Context, userId models.UserId) (*models.Session, error) {
  s.mu.RLock()
  defer s.mu.RUnlock()

  sess, ok := s.sessions[userId]
  if !ok || s.expired(sess) {
    return nil, ErrNotFound
  }
  return sess.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, sess *models.Session) error {
  s.mu.Lock()
  defer s.mu.Unlock()

  sess.UpdatedAt = time.Now()
  s.sessions[sess.UserId] = sess.Clone()

  return nil
}

func (s *MemoryStore) Delete(_ context.Context, userId models.UserId) error {
  s.mu.Lock()
  defer s.mu.Unlock()

  delete(s.sessions, userId)

  return nil
}

func (s *MemoryStore) Len() int {
  s.mu.RLock()
  defer s.mu.RUnlock()

  return len(s.sessions)
}

func (s *MemoryStore) expired(sess *models.Session) bool {
  return s.ttl > 0 && time.Since(sess.UpdatedAt) > s.ttl
}
