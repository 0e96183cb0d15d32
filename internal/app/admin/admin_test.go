package admin

import (
  "context"
  "errors"
  "strings"
  "testing"
  "time"
  "unicode/utf8"

  logtest "github.com/sirupsen/logrus/hooks/test"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/internal/testutils"
  "github.com/ushakovn/sumki/pkg/retry"
)

const adminId = 100

type pinger struct {
  texts []string
}

func (p *pinger) Ping(_ context.Context, text string) error {
  p.texts = append(p.texts, text)
  return errors.New("operator chat unavailable")
}

type fixture struct {
  gateway *Gateway
  store   *orders.MemoryStore
  sink    *testutils.Sink
  pinger  *pinger
}

func newFixture(t *testing.T, maxLength int) fixture {
  t.Helper()

  f := fixture{
    store:  orders.NewMemoryStore(),
    sink:   testutils.NewSink(),
    pinger: &pinger{},
  }
  gateway, err := NewGateway(Config{
    AdminIds:         []string{" 0100 ", "abc", ""},
    MaxMessageLength: maxLength,
    Retry:            retry.Policy{Attempts: 1},
  }, Dependencies{
    Orders: f.store,
    Sink:   f.sink,
    Pinger: f.pinger,
  })
  require.NoError(t, err)
  f.gateway = gateway

  return f
}

func (f fixture) seed(t *testing.T, count int) {
  t.Helper()

  for i := 0; i < count; i++ {
    order, err := orders.Assemble(models.OrderFields{
      Product:           models.ProductTypeCustom,
      CustomDescription: strings.Repeat("описание ", 20),
      Contact:           "+1000",
    }, models.Customer{Id: 42, Handle: "buyer"}, time.Now())
    require.NoError(t, err)

    _, err = f.store.Append(context.Background(), *order)
    require.NoError(t, err)
  }
}

func TestIsAuthorized(t *testing.T) {
  f := newFixture(t, 4000)

  assert.True(t, f.gateway.IsAuthorized(adminId))
  assert.False(t, f.gateway.IsAuthorized(101))
  assert.False(t, f.gateway.IsAuthorized(0))
}

func TestExecute_DeniedBeforeParsing(t *testing.T) {
  f := newFixture(t, 4000)
  f.seed(t, 1)

  result := f.gateway.Execute(context.Background(), 7, CommandStatus, []string{"1", "done"})
  assert.Equal(t, OutcomeDenied, result.Outcome)
  assert.Equal(t, []string{textAccessDenied}, result.Pages)

  result = f.gateway.Execute(context.Background(), 7, CommandStatus, []string{"x"})
  assert.Equal(t, OutcomeDenied, result.Outcome)

  list, err := f.store.ListAll(context.Background())
  require.NoError(t, err)
  assert.Equal(t, models.OrderStatusNew, list[0].Status)
}

func TestExecute_StatusWithNonNumericId(t *testing.T) {
  f := newFixture(t, 4000)
  f.seed(t, 1)

  before, err := f.store.ListAll(context.Background())
  require.NoError(t, err)

  for _, args := range [][]string{{"abc", "done"}, {"1"}, {"1", "done", "extra"}, {"-1", "done"}, {}} {
    result := f.gateway.Execute(context.Background(), adminId, CommandStatus, args)
    assert.Equal(t, OutcomeUsage, result.Outcome)
    assert.Equal(t, []string{"Использование: /status <id_заказа> <новый_статус>"}, result.Pages)
  }

  after, err := f.store.ListAll(context.Background())
  require.NoError(t, err)
  assert.Equal(t, before, after)
  assert.Empty(t, f.pinger.texts)
}

func TestExecute_Status(t *testing.T) {
  f := newFixture(t, 4000)
  f.seed(t, 1)

  result := f.gateway.Execute(context.Background(), adminId, CommandStatus, []string{"1", "shipped"})
  assert.Equal(t, OutcomeOK, result.Outcome)
  assert.Equal(t, []string{"Статус заказа #1 обновлен на 'shipped'"}, result.Pages)
  assert.Len(t, f.pinger.texts, 1)

  list, err := f.store.ListAll(context.Background())
  require.NoError(t, err)
  assert.Equal(t, "shipped", list[0].Status)

  result = f.gateway.Execute(context.Background(), adminId, CommandStatus, []string{"9", "shipped"})
  assert.Equal(t, OutcomeNotFound, result.Outcome)
}

func TestExecute_StatusLogsUnreachableOperator(t *testing.T) {
  hook := logtest.NewGlobal()

  f := newFixture(t, 4000)
  f.seed(t, 1)

  result := f.gateway.Execute(context.Background(), adminId, CommandStatus, []string{"1", "done"})
  require.Equal(t, OutcomeOK, result.Outcome)

  var logged bool
  for _, entry := range hook.AllEntries() {
    if strings.HasPrefix(entry.Message, "g.deps.Pinger.Ping") {
      logged = true
      assert.Equal(t, models.OrderId(1), entry.Data["order_id"])
    }
  }
  assert.True(t, logged)
}

func TestExecute_Note(t *testing.T) {
  f := newFixture(t, 4000)
  f.seed(t, 1)

  result := f.gateway.Execute(context.Background(), adminId, CommandNote, []string{"#1", "перезвонить", "вечером"})
  assert.Equal(t, OutcomeOK, result.Outcome)

  list, err := f.store.ListAll(context.Background())
  require.NoError(t, err)
  assert.Equal(t, []string{"перезвонить вечером"}, list[0].Notes)

  for _, args := range [][]string{{"1"}, {"one", "text"}, {"1", "  "}} {
    result = f.gateway.Execute(context.Background(), adminId, CommandNote, args)
    assert.Equal(t, OutcomeUsage, result.Outcome)
    assert.Equal(t, []string{"Использование: /note <id_заказа> <текст_заметки>"}, result.Pages)
  }
}

func TestExecute_OrdersPagination(t *testing.T) {
  f := newFixture(t, 300)

  result := f.gateway.Execute(context.Background(), adminId, CommandOrders, nil)
  assert.Equal(t, OutcomeEmpty, result.Outcome)

  f.seed(t, 5)

  result = f.gateway.Execute(context.Background(), adminId, CommandOrders, nil)
  require.Equal(t, OutcomeOK, result.Outcome)
  require.Greater(t, len(result.Pages), 1)

  for _, page := range result.Pages[:len(result.Pages)-1] {
    assert.Equal(t, 300, utf8.RuneCountInString(page))
  }
  assert.Equal(t, orders.RenderAll(mustList(t, f.store)), strings.Join(result.Pages, ""))
}

func TestHandle_SendsEveryPage(t *testing.T) {
  f := newFixture(t, 300)
  f.seed(t, 3)

  err := f.gateway.Handle(context.Background(), models.Event{
    Kind:    models.EventCommand,
    UserId:  adminId,
    ChatId:  9,
    Command: CommandOrders,
  })
  require.NoError(t, err)

  result := f.gateway.Execute(context.Background(), adminId, CommandOrders, nil)
  assert.Len(t, f.sink.TextsTo(9), len(result.Pages))
}

func mustList(t *testing.T, store orders.Store) []models.Order {
  t.Helper()

  list, err := store.ListAll(context.Background())
  require.NoError(t, err)

  return list
}
