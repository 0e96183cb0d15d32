package orders

import (
  "context"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/ushakovn/sumki/internal/models"
)

func TestMemoryStore(t *testing.T) {
  ctx := context.Background()
  store := NewMemoryStore()

  order, err := Assemble(models.OrderFields{Product: models.ProductTypeBag, Contact: "+1000"}, customer, now)
  require.NoError(t, err)

  first, err := store.Append(ctx, *order)
  require.NoError(t, err)
  second, err := store.Append(ctx, *order)
  require.NoError(t, err)
  assert.Greater(t, second, first)

  ok, err := store.UpdateStatus(ctx, first, "done")
  require.NoError(t, err)
  assert.True(t, ok)

  ok, err = store.AppendNote(ctx, second, "call back")
  require.NoError(t, err)
  assert.True(t, ok)

  ok, err = store.UpdateStatus(ctx, 999, "done")
  require.NoError(t, err)
  assert.False(t, ok)

  list, err := store.ListAll(ctx)
  require.NoError(t, err)
  require.Len(t, list, 2)
  assert.Equal(t, "done", list[0].Status)
  assert.Equal(t, models.OrderStatusNew, list[1].Status)
  assert.Equal(t, []string{"call back"}, list[1].Notes)

  list[0].Attributes.Bag.Color = "changed"
  again, err := store.ListAll(ctx)
  require.NoError(t, err)
  assert.Empty(t, again[0].Attributes.Bag.Color)
}
