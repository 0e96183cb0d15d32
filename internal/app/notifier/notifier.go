package notifier

import (
  "context"
  "fmt"

  telegram "github.com/go-telegram/bot"
  "github.com/go-playground/validator/v10"
  "github.com/google/uuid"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/metrics"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/hasher"
  "github.com/ushakovn/sumki/pkg/retry"
)

type Strategy string

const (
  StrategyNone     Strategy = "none"
  StrategyPlain    Strategy = "plain"
  StrategyMarkdown Strategy = "markdown"
  StrategyFallback Strategy = "fallback"
)

type Notifier struct {
  config Config
  deps   Dependencies
}

type Config struct {
  OperatorChatId models.ChatId `validate:"required"`
  Retry          retry.Policy
}

type Dependencies struct {
  Sink models.Sink `validate:"required"`
}

// Outcome reports how an order notification went. Attachment counters are
// only meaningful when Delivered is true.
type Outcome struct {
  Delivered         bool
  Strategy          Strategy
  Delivery          models.Delivery
  AttachmentsSent   int
  AttachmentsFailed int
  Err               error
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewNotifier(config Config, deps Dependencies) (*Notifier, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("config.Validate: %w", err)
  }
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("deps.Validate: %w", err)
  }
  return &Notifier{
    config: config,
    deps:   deps,
  }, nil
}

// Deliver sends the order summary to the operator chat, trying plain text,
// then escaped MarkdownV2, then a minimal notice. Attachments follow the
// summary and never change the outcome.
func (n *Notifier) Deliver(ctx context.Context, order models.Order, attachments []string) Outcome {
  text := orders.Summary(order)

  logger := log.
    WithField("delivery_id", uuid.NewString()).
    WithField("order_id", order.Id).
    WithField("text_digest", hasher.Short(text))

  messages := []struct {
    strategy Strategy
    message  models.TextMessage
  }{
    {
      strategy: StrategyPlain,
      message: models.TextMessage{
        ChatId: n.config.OperatorChatId,
        Text:   text,
      },
    },
    {
      strategy: StrategyMarkdown,
      message: models.TextMessage{
        ChatId:    n.config.OperatorChatId,
        Text:      telegram.EscapeMarkdown(text),
        ParseMode: models.ParseModeMarkdown,
      },
    },
    {
      strategy: StrategyFallback,
      message: models.TextMessage{
        ChatId: n.config.OperatorChatId,
        Text:   fallbackText(order),
      },
    },
  }

  outcome := Outcome{Strategy: StrategyNone}

  for _, m := range messages {
    delivery, err := n.send(ctx, m.message)
    if err != nil {
      logger.
        WithField("strategy", m.strategy).
        Errorf("n.send: %v", err)

      outcome.Err = err
      continue
    }
    outcome = Outcome{
      Delivered: true,
      Strategy:  m.strategy,
      Delivery:  delivery,
    }
    break
  }
  metrics.Deliveries.WithLabelValues(string(outcome.Strategy)).Inc()

  if !outcome.Delivered {
    logger.Errorf("order notification failed with every strategy: %v", outcome.Err)
    return outcome
  }

  logger.
    WithField("strategy", outcome.Strategy).
    WithField("message_id", outcome.Delivery.MessageId).
    Info("order notification delivered")

  for _, fileId := range attachments {
    _, err := n.sendPhoto(ctx, models.PhotoMessage{
      ChatId: n.config.OperatorChatId,
      FileId: fileId,
    })
    if err != nil {
      logger.
        WithField("file_id", fileId).
        Warnf("n.sendPhoto: %v", err)

      outcome.AttachmentsFailed++
      continue
    }
    outcome.AttachmentsSent++
  }

  return outcome
}

// Ping is a best-effort operator notice.
func (n *Notifier) Ping(ctx context.Context, text string) error {
  _, err := n.send(ctx, models.TextMessage{
    ChatId: n.config.OperatorChatId,
    Text:   text,
  })
  if err != nil {
    log.
      WithField("chat_id", n.config.OperatorChatId).
      Warnf("operator ping failed: %v", err)

    return fmt.Errorf("n.send: %w", err)
  }
  return nil
}

func (n *Notifier) send(ctx context.Context, message models.TextMessage) (models.Delivery, error) {
  var delivery models.Delivery

  err := retry.Do(ctx, n.config.Retry, func(ctx context.Context) error {
    var err error
    delivery, err = n.deps.Sink.SendText(ctx, message)
    return err
  })
  return delivery, err
}

func (n *Notifier) sendPhoto(ctx context.Context, message models.PhotoMessage) (models.Delivery, error) {
  var delivery models.Delivery

  err := retry.Do(ctx, n.config.Retry, func(ctx context.Context) error {
    var err error
    delivery, err = n.deps.Sink.SendPhoto(ctx, message)
    return err
  })
  return delivery, err
}

func fallbackText(order models.Order) string {
  customer := fmt.Sprintf("id %d", order.CustomerId)
  if order.CustomerHandle != "" {
    customer = fmt.Sprintf("%s (id %d)", orders.Handle(models.Customer{Handle: order.CustomerHandle}), order.CustomerId)
  }
  return fmt.Sprintf("Новый заказ #%d!\n\nОт: %s\n\nПожалуйста, проверьте логи.", order.Id, customer)
}
