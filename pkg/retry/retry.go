package retry

import (
  "context"
  "errors"
  "net"
  "os"
  "time"

  "github.com/cenkalti/backoff/v4"
  log "github.com/sirupsen/logrus"
)

// ErrTransient marks failures worth another attempt.
var ErrTransient = errors.New("transient failure")

const (
  DefaultAttempts = 3
  DefaultDelay    = 2 * time.Second
)

type Policy struct {
  Attempts int           `validate:"min=1"`
  Delay    time.Duration `validate:"min=0"`
}

func DefaultPolicy() Policy {
  return Policy{
    Attempts: DefaultAttempts,
    Delay:    DefaultDelay,
  }
}

// IsTransient reports timeouts and network failures.
func IsTransient(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, ErrTransient) ||
    errors.Is(err, context.DeadlineExceeded) ||
    errors.Is(err, os.ErrDeadlineExceeded) {
    return true
  }
  var netErr net.Error

  return errors.As(err, &netErr)
}

// Do calls op until it succeeds, fails with a non transient error or the
// policy attempts are exhausted. The last error is returned.
func Do(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
  attempts := max(policy.Attempts, 1)
  attempt := 0

  strategy := backoff.WithContext(
    backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Delay), uint64(attempts-1)),
    ctx,
  )

  operation := func() error {
    attempt++

    err := op(ctx)
    if err == nil {
      return nil
    }
    if !IsTransient(err) {
      return backoff.Permanent(err)
    }
    return err
  }

  notify := func(err error, wait time.Duration) {
    log.
      WithField("attempt", attempt).
      WithField("attempts", attempts).
      WithField("wait", wait).
      Warnf("transient failure, retrying: %v", err)
  }

  if err := backoff.RetryNotify(operation, strategy, notify); err != nil {
    if IsTransient(err) {
      log.
        WithField("attempts", attempt).
        Errorf("retries exhausted: %v", err)
    }
    return err
  }

  return nil
}
