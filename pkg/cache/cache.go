package cache

import (
  "sync"
  "time"
)

type item[V any] struct {
  value     V
  expiresAt time.Time
}

// Cache is a map guarded by a mutex with optional per-cache expiration.
// Zero ttl keeps values until they are deleted.
type Cache[K comparable, V any] struct {
  mu     sync.Mutex
  ttl    time.Duration
  values map[K]item[V]
  now    func() time.Time
}

func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
  return &Cache[K, V]{
    ttl:    ttl,
    values: make(map[K]item[V]),
    now:    time.Now,
  }
}

func (c *Cache[K, V]) Set(key K, value V) {
  c.mu.Lock()
  defer c.mu.Unlock()

  it := item[V]{value: value}
  if c.ttl > 0 {
    it.expiresAt = c.now().Add(c.ttl)
  }
  c.values[key] = it
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  it, ok := c.values[key]
  if !ok {
    return value, false
  }
  if !it.expiresAt.IsZero() && c.now().After(it.expiresAt) {
    delete(c.values, key)
    return value, false
  }

  return it.value, true
}

func (c *Cache[K, V]) Len() int {
  c.mu.Lock()
  defer c.mu.Unlock()

  return len(c.values)
}
