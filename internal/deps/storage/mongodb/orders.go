package mongodb

import (
  "context"
  "fmt"

  "github.com/ushakovn/sumki/internal/models"
  "go.mongodb.org/mongo-driver/mongo"
)

const (
  ordersCollection   = "orders"
  countersCollection = "counters"

  orderCounterKey = "order_id"
)

// OrderStore keeps orders in a collection. Ids come from a counter document
// so they stay sequential like the other order stores.
type OrderStore struct {
  client *Client
}

func NewOrderStore(client *Client) *OrderStore {
  return &OrderStore{client: client}
}

func (s *OrderStore) Append(ctx context.Context, order models.Order) (models.OrderId, error) {
  id, err := s.client.Increment(ctx, IncrementParams{
    Collection: countersCollection,
    Key:        orderCounterKey,
    Field:      "value",
  })
  if err != nil {
    return 0, fmt.Errorf("s.client.Increment: %w", err)
  }
  order = order.Clone()
  order.Id = id

  if order.Status == "" {
    order.Status = models.OrderStatusNew
  }
  if order.Notes == nil {
    order.Notes = []string{}
  }

  if _, err = s.client.Insert(ctx, InsertParams{
    Collection: ordersCollection,
    Document:   order,
  }); err != nil {
    return 0, fmt.Errorf("s.client.Insert: %w", err)
  }

  return id, nil
}

func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
  var list []models.Order

  err := s.client.Find(ctx, FindParams{
    Collection: ordersCollection,
    SortBy:     "id",
  }, func(cursor *mongo.Cursor) error {
    order := models.Order{}

    if err := cursor.Decode(&order); err != nil {
      return fmt.Errorf("cursor.Decode: %w", err)
    }
    list = append(list, order)

    return nil
  })
  if err != nil {
    return nil, fmt.Errorf("s.client.Find: %w", err)
  }

  return list, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id models.OrderId, status string) (bool, error) {
  found, err := s.client.Update(ctx, UpdateParams{
    Collection: ordersCollection,
    Filters:    map[string]any{"id": id},
    Update:     makeBsonDUpdate("$set", map[string]any{"status": status}),
  })
  if err != nil {
    return false, fmt.Errorf("s.client.Update: %w", err)
  }
  return found, nil
}

func (s *OrderStore) AppendNote(ctx context.Context, id models.OrderId, note string) (bool, error) {
  found, err := s.client.Update(ctx, UpdateParams{
    Collection: ordersCollection,
    Filters:    map[string]any{"id": id},
    Update:     makeBsonDUpdate("$push", map[string]any{"notes": note}),
  })
  if err != nil {
    return false, fmt.Errorf("s.client.Update: %w", err)
  }
  return found, nil
}
