package keylock

import (
  "sync"
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestLocker_SerializesSameKey(t *testing.T) {
  locker := New[int64]()

  var (
    wg      sync.WaitGroup
    inside  int
    maxSeen int
    mu      sync.Mutex
  )
  for i := 0; i < 16; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()

      unlock := locker.Lock(7)
      defer unlock()

      mu.Lock()
      inside++
      maxSeen = max(maxSeen, inside)
      mu.Unlock()

      mu.Lock()
      inside--
      mu.Unlock()
    }()
  }
  wg.Wait()

  assert.Equal(t, 1, maxSeen)
  assert.Zero(t, locker.Len())
}

func TestLocker_IndependentKeys(t *testing.T) {
  locker := New[string]()

  unlockA := locker.Lock("a")
  unlockB := locker.Lock("b")

  assert.Equal(t, 2, locker.Len())

  unlockA()
  unlockB()

  assert.Zero(t, locker.Len())
}
