package keylock

import "sync"

// Locker hands out one mutex per key and forgets it once nobody holds or
// waits for it.
type Locker[K comparable] struct {
  mu    sync.Mutex
  locks map[K]*entry
}

type entry struct {
  mu   sync.Mutex
  refs int
}

func New[K comparable]() *Locker[K] {
  return &Locker[K]{
    locks: make(map[K]*entry),
  }
}

// Lock blocks until the key is free and returns its unlock func.
func (l *Locker[K]) Lock(key K) func() {
  l.mu.Lock()
  e, ok := l.locks[key]
  if !ok {
    e = &entry{}
    l.locks[key] = e
  }
  e.refs++
  l.mu.Unlock()

  e.mu.Lock()

  return func() {
    e.mu.Unlock()

    l.mu.Lock()
    defer l.mu.Unlock()

    e.refs--
    if e.refs == 0 {
      delete(l.locks, key)
    }
  }
}

func (l *Locker[K]) Len() int {
  l.mu.Lock()
  defer l.mu.Unlock()

  return len(l.locks)
}
