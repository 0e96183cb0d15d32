package telegram

import (
  "context"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  "github.com/google/uuid"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/admin"
  "github.com/ushakovn/sumki/internal/models"
)

func (b *Transport) registerHandlers(_ context.Context) {
  b.deps.Telegram.RegisterHandlerMatchFunc(
    func(update *tgmodels.Update) bool {
      return update != nil
    },
    b.handleUpdate,
  )
}

func (b *Transport) handleUpdate(ctx context.Context, _ *telegram.Bot, update *tgmodels.Update) {
  if update.CallbackQuery != nil {
    b.answerCallback(ctx, update.CallbackQuery.ID)
  }

  event, ok := eventFromUpdate(update)
  if !ok {
    return
  }
  b.dispatch(ctx, event)
}

// dispatch queues the event behind the earlier events of the same user.
func (b *Transport) dispatch(ctx context.Context, event models.Event) {
  requestId := uuid.NewString()

  b.mailbox.Push(ctx, event.UserId, func(ctx context.Context) error {
    logger := log.
      WithField("request_id", requestId).
      WithField("user_id", event.UserId).
      WithField("event", event.Kind)

    if event.Kind == models.EventCommand && admin.IsCommand(event.Command) {
      if err := b.deps.Admin.Handle(ctx, event); err != nil {
        logger.Errorf("b.deps.Admin.Handle: %v", err)
      }
      return nil
    }

    outcome, err := b.deps.Engine.Handle(ctx, event)
    if err != nil {
      logger.Errorf("b.deps.Engine.Handle: %v", err)
      return nil
    }
    logger.
      WithField("outcome", outcome).
      Debug("event handled")

    return nil
  })
}

func (b *Transport) answerCallback(ctx context.Context, id string) {
  _, err := b.deps.Telegram.AnswerCallbackQuery(ctx, &telegram.AnswerCallbackQueryParams{
    CallbackQueryID: id,
  })
  if err != nil {
    log.
      WithField("callback_query_id", id).
      Warnf("b.deps.Telegram.AnswerCallbackQuery: %v", err)
  }
}
