package dialogue

import (
  "context"
  "fmt"

  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/metrics"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/retry"
)

const (
  commandStart  = "start"
  commandCancel = "cancel"

  callbackConfirm = "confirm_order"
  callbackCancel  = "cancel_order"
)

// step handles one event against a private copy of the session.
type step struct {
  engine *Engine
  event  models.Event
  sess   *models.Session
  ended  bool
  // stored is set once the order is appended; the step must not fail after it.
  stored bool
}

func (s *step) catalog() *catalog.Catalog {
  return s.engine.deps.Catalog
}

func (s *step) buttons() catalog.Buttons {
  return s.engine.deps.Catalog.Buttons
}

func (s *step) run(ctx context.Context) (Outcome, error) {
  b := s.buttons()

  switch {
  case s.event.IsCommand(commandStart):
    return s.restart(ctx)

  case s.event.IsCommand(commandCancel), s.event.IsText(b.CancelOrder):
    return s.cancel(ctx)

  case s.event.Kind == models.EventWebApp:
    return s.webApp(ctx)

  case s.event.IsText(b.Back):
    return s.back(ctx)
  }

  switch s.sess.Stage() {

  case models.StageStart:
    return s.onStart(ctx)

  case models.StageChooseProduct:
    return s.onChooseProduct(ctx)

  case models.StageCustomOrder:
    return s.onCustomOrder(ctx)

  case models.StageChooseSize:
    return s.onChooseSize(ctx)

  case models.StageChooseShape:
    return s.onChooseShape(ctx)

  case models.StageChooseMaterial:
    return s.onChooseMaterial(ctx)

  case models.StageChooseColor:
    return s.onChooseColor(ctx)

  case models.StageChooseOptions:
    return s.onChooseOptions(ctx)

  case models.StagePreview:
    return s.onPreview(ctx)

  case models.StageContact:
    return s.onContact(ctx)
  }

  return OutcomeIgnored, nil
}

// enter records stage on the history and runs its entry action.
func (s *step) enter(ctx context.Context, stage models.Stage) error {
  s.sess.Enter(stage)

  metrics.StageEntries.WithLabelValues(string(stage)).Inc()

  return s.render(ctx, stage, true)
}

// reprompt renders the current stage again without touching the history.
func (s *step) reprompt(ctx context.Context, notice string) error {
  if notice != "" {
    if err := s.reply(ctx, notice, nil); err != nil {
      return err
    }
  }
  return s.render(ctx, s.sess.Stage(), false)
}

func (s *step) reply(ctx context.Context, text string, keyboard *models.Keyboard) error {
  return s.send(ctx, models.TextMessage{
    ChatId:   s.event.ChatId,
    Text:     text,
    Keyboard: keyboard,
  })
}

func (s *step) send(ctx context.Context, message models.TextMessage) error {
  err := retry.Do(ctx, s.engine.config.Retry, func(ctx context.Context) error {
    _, err := s.engine.deps.Sink.SendText(ctx, message)
    return err
  })
  if err != nil {
    return fmt.Errorf("s.engine.deps.Sink.SendText: %w", err)
  }
  return nil
}
