package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

const DefaultCount = 4

type Call func(ctx context.Context) error

// Pool runs pushed calls on a fixed number of goroutines.
type Pool struct {
  count   int
  ch      chan Call
  done    chan struct{}
  stopped bool
}

func NewPool(ctx context.Context, count int) *Pool {
  if count <= 0 {
    count = DefaultCount
  }
  pool := &Pool{
    count: count,
    ch:    make(chan Call),
    done:  make(chan struct{}),
  }
  pool.start(ctx)

  return pool
}

func (p *Pool) start(ctx context.Context) {
  var wg sync.WaitGroup

  wg.Add(p.count)

  for index := 0; index < p.count; index++ {
    go func() {
      defer wg.Done()

      for call := range p.ch {
        if err := call(ctx); err != nil {
          log.Errorf("worker.pool: worker call failed: %v", err)
        }
      }
    }()
  }

  go func() {
    wg.Wait()

    close(p.done)
  }()
}

func (p *Pool) Push(call Call) {
  p.ch <- call
}

// StopWait closes the pool and blocks until every pushed call returned.
func (p *Pool) StopWait() {
  if p.stopped {
    return
  }
  close(p.ch)

  <-p.done

  p.stopped = true
}
