package dialogue

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/go-playground/validator/v10"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/notifier"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/app/session"
  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/metrics"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/keylock"
  "github.com/ushakovn/sumki/pkg/retry"
)

type Outcome string

const (
  OutcomeAdvanced   Outcome = "advanced"
  OutcomeReturned   Outcome = "returned"
  OutcomeStayed     Outcome = "stayed"
  OutcomeRejected   Outcome = "rejected"
  OutcomeIgnored    Outcome = "ignored"
  OutcomeNoPrevious Outcome = "no_previous"
  OutcomeCancelled  Outcome = "cancelled"
  OutcomeSubmitted  Outcome = "submitted"
  OutcomeFailed     Outcome = "failed"
)

const failureReportTimeout = 10 * time.Second

type Filter interface {
  IsClean(text string) bool
}

type Media interface {
  Load(ctx context.Context, illustrations []models.Illustration) []models.IllustrationResult
}

type Notifier interface {
  Deliver(ctx context.Context, order models.Order, attachments []string) notifier.Outcome
}

// Engine drives the order dialogue. Events of one user are handled one at a
// time; a step either completes and persists its session or leaves the
// stored session untouched.
type Engine struct {
  config Config
  deps   Dependencies
  locks  *keylock.Locker[models.UserId]
  now    func() time.Time
}

type Config struct {
  MaxPhotoSize int64         `validate:"min=1"`
  MaxPhotos    int           `validate:"min=1"`
  StepTimeout  time.Duration `validate:"min=0"`
  Retry        retry.Policy
}

type Dependencies struct {
  Sessions session.Store    `validate:"required"`
  Orders   orders.Store     `validate:"required"`
  Sink     models.Sink      `validate:"required"`
  Filter   Filter           `validate:"required"`
  Media    Media            `validate:"required"`
  Notifier Notifier         `validate:"required"`
  Catalog  *catalog.Catalog `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewEngine(config Config, deps Dependencies) (*Engine, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("config.Validate: %w", err)
  }
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("deps.Validate: %w", err)
  }
  return &Engine{
    config: config,
    deps:   deps,
    locks:  keylock.New[models.UserId](),
    now:    time.Now,
  }, nil
}

func (e *Engine) Handle(ctx context.Context, event models.Event) (Outcome, error) {
  unlock := e.locks.Lock(event.UserId)
  defer unlock()

  if e.config.StepTimeout > 0 {
    var cancel context.CancelFunc
    ctx, cancel = context.WithTimeout(ctx, e.config.StepTimeout)
    defer cancel()
  }

  logger := log.
    WithField("user_id", event.UserId).
    WithField("event", event.Kind)

  stored, err := e.deps.Sessions.Load(ctx, event.UserId)
  switch {
  case errors.Is(err, session.ErrNotFound):
    stored = models.NewSession(event.UserId, event.ChatId)
  case err != nil:
    e.reportFailure(ctx, event)
    return OutcomeFailed, fmt.Errorf("e.deps.Sessions.Load: %w", err)
  }
  stored.ChatId = event.ChatId

  st := &step{
    engine: e,
    event:  event,
    sess:   stored.Clone(),
  }
  started := time.Now()
  stage := stored.Stage()

  outcome, err := st.run(ctx)

  metrics.StepDuration.WithLabelValues(string(stage)).Observe(time.Since(started).Seconds())

  if err != nil {
    metrics.Outcomes.WithLabelValues(string(OutcomeFailed)).Inc()

    logger.
      WithField("stage", stage).
      Errorf("st.run: %v", err)

    e.reportFailure(ctx, event)
    return OutcomeFailed, err
  }

  if err = e.persist(ctx, st); err != nil {
    metrics.Outcomes.WithLabelValues(string(OutcomeFailed)).Inc()

    logger.
      WithField("stage", st.sess.Stage()).
      Errorf("e.persist: %v", err)

    e.reportFailure(ctx, event)
    return OutcomeFailed, err
  }
  metrics.Outcomes.WithLabelValues(string(outcome)).Inc()

  logger.
    WithField("from", stage).
    WithField("to", st.sess.Stage()).
    WithField("outcome", outcome).
    Debug("dialogue step handled")

  return outcome, nil
}

func (e *Engine) persist(ctx context.Context, st *step) error {
  if st.stored {
    e.closeSubmitted(ctx, st)
    return nil
  }
  if st.ended {
    if err := e.deps.Sessions.Delete(ctx, st.event.UserId); err != nil {
      return fmt.Errorf("e.deps.Sessions.Delete: %w", err)
    }
    return nil
  }
  if err := e.deps.Sessions.Save(ctx, st.sess); err != nil {
    return fmt.Errorf("e.deps.Sessions.Save: %w", err)
  }
  return nil
}

// closeSubmitted ends the session of a stored order. When the session can
// not be deleted it is overwritten with a fresh one, so a repeated contact
// lands at start instead of storing the order again.
func (e *Engine) closeSubmitted(ctx context.Context, st *step) {
  ctx, cancel := st.detached(ctx)
  defer cancel()

  logger := log.WithField("user_id", st.event.UserId)

  err := e.deps.Sessions.Delete(ctx, st.event.UserId)
  if err == nil {
    return
  }
  logger.Warnf("e.deps.Sessions.Delete: %v", err)

  if err = e.deps.Sessions.Save(ctx, models.NewSession(st.event.UserId, st.event.ChatId)); err != nil {
    logger.Errorf("e.deps.Sessions.Save: %v", err)
  }
}

// reportFailure tells the user the step failed. It runs past the step deadline.
func (e *Engine) reportFailure(ctx context.Context, event models.Event) {
  ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureReportTimeout)
  defer cancel()

  _, err := e.deps.Sink.SendText(ctx, models.TextMessage{
    ChatId: event.ChatId,
    Text:   textStepFailed,
  })
  if err != nil {
    log.
      WithField("user_id", event.UserId).
      Errorf("e.deps.Sink.SendText: %v", err)
  }
}
