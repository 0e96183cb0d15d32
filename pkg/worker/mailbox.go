package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

// Mailbox runs calls pushed under the same key one at a time in push order.
// Calls for different keys run concurrently. A key holds a goroutine only
// while it has pending calls.
type Mailbox[K comparable] struct {
  mu     sync.Mutex
  queues map[K][]Call
  wg     sync.WaitGroup
}

func NewMailbox[K comparable]() *Mailbox[K] {
  return &Mailbox[K]{
    queues: make(map[K][]Call),
  }
}

func (m *Mailbox[K]) Push(ctx context.Context, key K, call Call) {
  m.mu.Lock()
  defer m.mu.Unlock()

  queue, running := m.queues[key]
  m.queues[key] = append(queue, call)

  if running {
    return
  }
  m.wg.Add(1)

  go m.drain(ctx, key)
}

func (m *Mailbox[K]) drain(ctx context.Context, key K) {
  defer m.wg.Done()

  for {
    call, ok := m.next(key)
    if !ok {
      return
    }
    if err := call(ctx); err != nil {
      log.
        WithField("key", key).
        Errorf("worker.mailbox: call failed: %v", err)
    }
  }
}

func (m *Mailbox[K]) next(key K) (Call, bool) {
  m.mu.Lock()
  defer m.mu.Unlock()

  queue := m.queues[key]
  if len(queue) == 0 {
    delete(m.queues, key)
    return nil, false
  }
  m.queues[key] = queue[1:]

  return queue[0], true
}

// Wait blocks until every pushed call returned.
func (m *Mailbox[K]) Wait() {
  m.wg.Wait()
}
