package retry

import (
  "context"
  "errors"
  "fmt"
  "net"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestDo_RetriesTransientUntilSuccess(t *testing.T) {
  calls := 0

  err := Do(context.Background(), Policy{Attempts: 3}, func(context.Context) error {
    calls++
    if calls < 3 {
      return fmt.Errorf("send: %w", ErrTransient)
    }
    return nil
  })

  require.NoError(t, err)
  assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
  calls := 0
  boom := errors.New("bad request")

  err := Do(context.Background(), Policy{Attempts: 3}, func(context.Context) error {
    calls++
    return boom
  })

  require.ErrorIs(t, err, boom)
  assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
  calls := 0

  err := Do(context.Background(), Policy{Attempts: 3}, func(context.Context) error {
    calls++
    return &net.OpError{Op: "dial", Err: errors.New("connection refused")}
  })

  require.Error(t, err)
  assert.True(t, IsTransient(err))
  assert.Equal(t, 3, calls)
}

func TestDo_SingleAttemptPolicy(t *testing.T) {
  calls := 0

  err := Do(context.Background(), Policy{Attempts: 1}, func(context.Context) error {
    calls++
    return ErrTransient
  })

  require.ErrorIs(t, err, ErrTransient)
  assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
  assert.False(t, IsTransient(nil))
  assert.False(t, IsTransient(errors.New("forbidden")))
  assert.True(t, IsTransient(context.DeadlineExceeded))
  assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", ErrTransient)))
}
