package admin

import (
  "context"
  "fmt"
  "strconv"
  "strings"

  set "github.com/deckarep/golang-set/v2"
  "github.com/go-playground/validator/v10"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/metrics"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/retry"
  "github.com/ushakovn/sumki/pkg/stringer"
)

const (
  CommandHelp   = "help"
  CommandOrders = "orders"
  CommandStatus = "status"
  CommandNote   = "note"
)

type Outcome string

const (
  OutcomeOK       Outcome = "ok"
  OutcomeDenied   Outcome = "denied"
  OutcomeUsage    Outcome = "usage"
  OutcomeNotFound Outcome = "not_found"
  OutcomeEmpty    Outcome = "empty"
  OutcomeFailed   Outcome = "failed"
  OutcomeUnknown  Outcome = "unknown"
)

type Result struct {
  Outcome Outcome
  Pages   []string
}

// Pinger receives best-effort notices about operator actions.
type Pinger interface {
  Ping(ctx context.Context, text string) error
}

type Gateway struct {
  config Config
  deps   Dependencies
  admins set.Set[string]
}

type Config struct {
  AdminIds         []string
  MaxMessageLength int `validate:"min=1"`
  Retry            retry.Policy
}

type Dependencies struct {
  Orders orders.Store `validate:"required"`
  Sink   models.Sink  `validate:"required"`
  Pinger Pinger
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewGateway(config Config, deps Dependencies) (*Gateway, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("config.Validate: %w", err)
  }
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("deps.Validate: %w", err)
  }
  admins := set.NewSet[string]()

  for _, id := range config.AdminIds {
    if id = normalizeId(id); id != "" {
      admins.Add(id)
    }
  }
  return &Gateway{
    config: config,
    deps:   deps,
    admins: admins,
  }, nil
}

func (g *Gateway) IsAuthorized(userId models.UserId) bool {
  return g.admins.ContainsOne(normalizeId(strconv.FormatInt(userId, 10)))
}

// IsCommand reports whether command is served by the gateway.
func IsCommand(command string) bool {
  switch command {
  case CommandHelp, CommandOrders, CommandStatus, CommandNote:
    return true
  }
  return false
}

// Handle executes an operator command event and replies with every page.
func (g *Gateway) Handle(ctx context.Context, event models.Event) error {
  result := g.Execute(ctx, event.UserId, event.Command, event.Args)

  for index, page := range result.Pages {
    err := retry.Do(ctx, g.config.Retry, func(ctx context.Context) error {
      _, err := g.deps.Sink.SendText(ctx, models.TextMessage{
        ChatId: event.ChatId,
        Text:   page,
      })
      return err
    })
    if err != nil {
      return fmt.Errorf("g.deps.Sink.SendText: page %d: %w", index, err)
    }
  }
  return nil
}

func (g *Gateway) Execute(ctx context.Context, userId models.UserId, command string, args []string) Result {
  logger := log.
    WithField("user_id", userId).
    WithField("command", command)

  result := g.execute(ctx, userId, command, args)

  metrics.AdminCommands.WithLabelValues(command, string(result.Outcome)).Inc()

  switch result.Outcome {
  case OutcomeDenied:
    logger.Warn("operator command denied")
  case OutcomeFailed:
    logger.Error("operator command failed")
  default:
    logger.WithField("outcome", result.Outcome).Info("operator command handled")
  }
  return result
}

func (g *Gateway) execute(ctx context.Context, userId models.UserId, command string, args []string) Result {
  if !g.IsAuthorized(userId) {
    return reply(OutcomeDenied, textAccessDenied)
  }

  switch command {

  case CommandHelp:
    return reply(OutcomeOK, textHelp)

  case CommandOrders:
    return g.listOrders(ctx)

  case CommandStatus:
    return g.updateStatus(ctx, args)

  case CommandNote:
    return g.appendNote(ctx, args)
  }

  return reply(OutcomeUnknown, textHelp)
}

func (g *Gateway) listOrders(ctx context.Context) Result {
  list, err := g.deps.Orders.ListAll(ctx)
  if err != nil {
    log.Errorf("g.deps.Orders.ListAll: %v", err)
    return reply(OutcomeFailed, textFailed)
  }
  if len(list) == 0 {
    return reply(OutcomeEmpty, textNoOrders)
  }

  return Result{
    Outcome: OutcomeOK,
    Pages:   stringer.SplitRunes(orders.RenderAll(list), g.config.MaxMessageLength),
  }
}

func (g *Gateway) updateStatus(ctx context.Context, args []string) Result {
  if len(args) != 2 {
    return reply(OutcomeUsage, textStatusUsage)
  }
  id, ok := parseOrderId(args[0])
  if !ok {
    return reply(OutcomeUsage, textStatusUsage)
  }
  status := args[1]

  updated, err := g.deps.Orders.UpdateStatus(ctx, id, status)
  if err != nil {
    log.
      WithField("order_id", id).
      Errorf("g.deps.Orders.UpdateStatus: %v", err)

    return reply(OutcomeFailed, fmt.Sprintf(textStatusFailed, id))
  }
  if !updated {
    return reply(OutcomeNotFound, fmt.Sprintf(textStatusFailed, id))
  }

  if g.deps.Pinger != nil {
    if err = g.deps.Pinger.Ping(ctx, fmt.Sprintf(textStatusPing, id, status)); err != nil {
      log.
        WithField("order_id", id).
        Warnf("g.deps.Pinger.Ping: %v", err)
    }
  }
  return reply(OutcomeOK, fmt.Sprintf(textStatusUpdated, id, status))
}

func (g *Gateway) appendNote(ctx context.Context, args []string) Result {
  if len(args) < 2 {
    return reply(OutcomeUsage, textNoteUsage)
  }
  id, ok := parseOrderId(args[0])
  if !ok {
    return reply(OutcomeUsage, textNoteUsage)
  }
  note := strings.TrimSpace(strings.Join(args[1:], " "))
  if note == "" {
    return reply(OutcomeUsage, textNoteUsage)
  }

  added, err := g.deps.Orders.AppendNote(ctx, id, note)
  if err != nil {
    log.
      WithField("order_id", id).
      Errorf("g.deps.Orders.AppendNote: %v", err)

    return reply(OutcomeFailed, fmt.Sprintf(textNoteFailed, id))
  }
  if !added {
    return reply(OutcomeNotFound, fmt.Sprintf(textNoteFailed, id))
  }
  return reply(OutcomeOK, fmt.Sprintf(textNoteAdded, id))
}

func reply(outcome Outcome, text string) Result {
  return Result{
    Outcome: outcome,
    Pages:   []string{text},
  }
}

func parseOrderId(arg string) (models.OrderId, bool) {
  id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
  if err != nil || id <= 0 {
    return 0, false
  }
  return id, true
}

func normalizeId(id string) string {
  id = strings.TrimSpace(id)

  if n, err := strconv.ParseInt(id, 10, 64); err == nil {
    return strconv.FormatInt(n, 10)
  }
  return id
}
