package telegram

import (
  "context"
  "fmt"

  "github.com/go-playground/validator/v10"
  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/dialogue"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/worker"
)

const textStarted = "Бот запущен и принимает заказы."

// Bot is the part of the telegram client the transport uses.
type Bot interface {
  Start(ctx context.Context)
  RegisterHandlerMatchFunc(matchFunc telegram.MatchFunc, f telegram.HandlerFunc, m ...telegram.Middleware) string
  SendMessage(ctx context.Context, params *telegram.SendMessageParams) (*tgmodels.Message, error)
  SendMediaGroup(ctx context.Context, params *telegram.SendMediaGroupParams) ([]*tgmodels.Message, error)
  SendPhoto(ctx context.Context, params *telegram.SendPhotoParams) (*tgmodels.Message, error)
  AnswerCallbackQuery(ctx context.Context, params *telegram.AnswerCallbackQueryParams) (bool, error)
  SetMyCommands(ctx context.Context, params *telegram.SetMyCommandsParams) (bool, error)
}

type Engine interface {
  Handle(ctx context.Context, event models.Event) (dialogue.Outcome, error)
}

type Admin interface {
  Handle(ctx context.Context, event models.Event) error
}

type Pinger interface {
  Ping(ctx context.Context, text string) error
}

// Transport turns telegram updates into events and is the outbound sink for
// everything the bot sends. Events of one user are handled in arrival order.
type Transport struct {
  deps    Dependencies
  mailbox *worker.Mailbox[models.UserId]
}

// Dependencies are set after construction: the engine and the gateway send
// through the transport, so they are built on top of it.
type Dependencies struct {
  Telegram Bot `validate:"required"`
  Engine   Engine
  Admin    Admin
  Pinger   Pinger
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewTransport(deps Dependencies) (*Transport, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("deps.Validate: %w", err)
  }
  return &Transport{
    deps:    deps,
    mailbox: worker.NewMailbox[models.UserId](),
  }, nil
}

// Bind sets the handlers of inbound events.
func (b *Transport) Bind(engine Engine, admin Admin, pinger Pinger) {
  b.deps.Engine = engine
  b.deps.Admin = admin
  b.deps.Pinger = pinger
}

// Start registers the update handler, publishes the command menu and starts
// polling in the background.
func (b *Transport) Start(ctx context.Context) error {
  if b.deps.Engine == nil || b.deps.Admin == nil {
    return fmt.Errorf("transport handlers are not bound")
  }
  b.registerHandlers(ctx)

  b.publishCommands(ctx)
  b.pingOperator(ctx)

  go b.deps.Telegram.Start(ctx)

  return nil
}

// Wait blocks until every accepted event is handled.
func (b *Transport) Wait() {
  b.mailbox.Wait()
}

func (b *Transport) publishCommands(ctx context.Context) {
  _, err := b.deps.Telegram.SetMyCommands(ctx, &telegram.SetMyCommandsParams{
    Commands: []tgmodels.BotCommand{
      {Command: "start", Description: "Начать оформление заказа"},
      {Command: "cancel", Description: "Отменить текущий заказ"},
    },
  })
  if err != nil {
    log.Warnf("b.deps.Telegram.SetMyCommands: %v", err)
  }
}

func (b *Transport) pingOperator(ctx context.Context) {
  if b.deps.Pinger == nil {
    return
  }
  if err := b.deps.Pinger.Ping(ctx, textStarted); err != nil {
    log.Warnf("b.deps.Pinger.Ping: %v", err)
  }
}
