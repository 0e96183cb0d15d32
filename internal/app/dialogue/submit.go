package dialogue

import (
  "context"
  "errors"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/models"
)

// submit stores the order and notifies the operator. Once the order is
// stored the session ends whatever happens to the notifications, so a
// repeated contact can not store it twice.
func (s *step) submit(ctx context.Context) (Outcome, error) {
  logger := log.WithField("user_id", s.event.UserId)

  order, err := orders.Assemble(s.sess.Fields, s.event.Customer(), s.engine.now())
  switch {
  case errors.Is(err, orders.ErrContactRequired):
    return s.reject(ctx, "")

  case err != nil:
    logger.Errorf("orders.Assemble: %v", err)

    s.ended = true

    if err = s.reply(ctx, textOrderBroken, s.placeOrderKeyboard()); err != nil {
      return OutcomeFailed, err
    }
    return OutcomeRejected, nil
  }

  id, err := s.engine.deps.Orders.Append(ctx, *order)
  if err != nil {
    return OutcomeFailed, fmt.Errorf("s.engine.deps.Orders.Append: %w", err)
  }
  order.Id = id
  s.stored = true

  s.sess.Enter(models.StageSubmitted)
  s.ended = true

  logger = logger.WithField("order_id", id)
  logger.Info("order stored")

  ctx, cancel := s.detached(ctx)
  defer cancel()

  outcome := s.engine.deps.Notifier.Deliver(ctx, *order, order.Attributes.PhotoIds())

  text := fmt.Sprintf(textOrderAccepted, id)
  if !outcome.Delivered {
    text = fmt.Sprintf(textOrderNotDelivered, id)
  }
  if err = s.reply(ctx, text, models.RemoveKeyboard()); err != nil {
    logger.Errorf("s.reply: %v", err)
  }
  if err = s.reply(ctx, textAnotherOrder, s.placeOrderKeyboard()); err != nil {
    logger.Errorf("s.reply: %v", err)
  }

  return OutcomeSubmitted, nil
}

// detached gives post-store work its own deadline so an expiring step
// can not cut the operator notification short.
func (s *step) detached(ctx context.Context) (context.Context, context.CancelFunc) {
  ctx = context.WithoutCancel(ctx)

  if timeout := s.engine.config.StepTimeout; timeout > 0 {
    return context.WithTimeout(ctx, timeout)
  }
  return context.WithCancel(ctx)
}
