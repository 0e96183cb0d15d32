package redis

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "strconv"
  "time"

  "github.com/go-playground/validator/v10"
  backend "github.com/redis/go-redis/v9"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/session"
  "github.com/ushakovn/sumki/internal/models"
)

const defaultPrefix = "sumki:session:"

type Config struct {
  Addr     string `validate:"required"`
  Password string
  DB       int           `validate:"min=0"`
  TTL      time.Duration `validate:"min=0"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

// SessionStore keeps sessions as JSON values under a per-user key. A
// non-zero ttl is refreshed on every save.
type SessionStore struct {
  client *backend.Client
  prefix string
  ttl    time.Duration
}

type Option func(*SessionStore)

func WithPrefix(prefix string) Option {
  return func(s *SessionStore) {
    s.prefix = prefix
  }
}

func NewSessionStore(ctx context.Context, config Config, opts ...Option) (*SessionStore, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }
  client := backend.NewClient(&backend.Options{
    Addr:     config.Addr,
    Password: config.Password,
    DB:       config.DB,
  })

  if err := client.Ping(ctx).Err(); err != nil {
    return nil, fmt.Errorf("client.Ping: %w", err)
  }
  log.
    WithField("addr", config.Addr).
    Info("redis session store connected")

  return NewSessionStoreFromClient(client, config.TTL, opts...), nil
}

func NewSessionStoreFromClient(client *backend.Client, ttl time.Duration, opts ...Option) *SessionStore {
  store := &SessionStore{
    client: client,
    prefix: defaultPrefix,
    ttl:    ttl,
  }
  for _, opt := range opts {
    opt(store)
  }
  return store
}

func (s *SessionStore) key(userId models.UserId) string {
  return s.prefix + strconv.FormatInt(userId, 10)
}

func (s *SessionStore) Load(ctx context.Context, userId models.UserId) (*models.Session, error) {
  data, err := s.client.Get(ctx, s.key(userId)).Bytes()
  if err != nil {
    if errors.Is(err, backend.Nil) {
      return nil, session.ErrNotFound
    }
    return nil, fmt.Errorf("s.client.Get: %w", err)
  }

  sess := new(models.Session)

  if err = json.Unmarshal(data, sess); err != nil {
    return nil, fmt.Errorf("json.Unmarshal: %w", err)
  }
  return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *models.Session) error {
  stored := sess.Clone()
  stored.UpdatedAt = time.Now()

  data, err := json.Marshal(stored)
  if err != nil {
    return fmt.Errorf("json.Marshal: %w", err)
  }

  if err = s.client.Set(ctx, s.key(sess.UserId), data, s.ttl).Err(); err != nil {
    return fmt.Errorf("s.client.Set: %w", err)
  }
  return nil
}

func (s *SessionStore) Delete(ctx context.Context, userId models.UserId) error {
  if err := s.client.Del(ctx, s.key(userId)).Err(); err != nil {
    return fmt.Errorf("s.client.Del: %w", err)
  }
  return nil
}

func (s *SessionStore) Close() error {
  return s.client.Close()
}
