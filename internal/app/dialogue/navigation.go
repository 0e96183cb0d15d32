package dialogue

import (
  "context"

  "github.com/ushakovn/sumki/internal/models"
)

// back drops the current render and re-enters the previous stage. With
// nothing to return to the session ends.
func (s *step) back(ctx context.Context) (Outcome, error) {
  target, ok := s.sess.Back()
  if !ok {
    s.ended = true

    if err := s.reply(ctx, textNoPrevious, s.placeOrderKeyboard()); err != nil {
      return OutcomeFailed, err
    }
    return OutcomeNoPrevious, nil
  }
  if err := s.enter(ctx, target); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeReturned, nil
}

func (s *step) cancel(ctx context.Context) (Outcome, error) {
  s.ended = true

  if err := s.reply(ctx, textOrderCancelled, s.placeOrderKeyboard()); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeCancelled, nil
}

func (s *step) restart(ctx context.Context) (Outcome, error) {
  s.sess.Reset()

  return s.advance(ctx, models.StageStart)
}

func (s *step) placeOrderKeyboard() *models.Keyboard {
  return models.NewReplyKeyboard(models.Row(s.buttons().PlaceOrder))
}
