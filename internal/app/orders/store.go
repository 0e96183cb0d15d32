package orders

import (
  "context"
  "slices"
  "sync"

  "github.com/ushakovn/sumki/internal/models"
)

// Store is the durable order collection. Append assigns the id. A false
// result from the update methods means the order does not exist.
type Store interface {
  Append(ctx context.Context, order models.Order) (models.OrderId, error)
  ListAll(ctx context.Context) ([]models.Order, error)
  UpdateStatus(ctx context.Context, id models.OrderId, status string) (bool, error)
  AppendNote(ctx context.Context, id models.OrderId, note string) (bool, error)
}

type MemoryStore struct {
  mu     sync.RWMutex
  lastId models.OrderId
  orders []models.Order
}

func NewMemoryStore() *MemoryStore {
  return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, order models.Order) (models.OrderId, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.lastId++

  order = order.Clone()
  order.Id = s.lastId

  if order.Status == "" {
    order.Status = models.OrderStatusNew
  }
  s.orders = append(s.orders, order)

  return order.Id, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]models.Order, error) {
  s.mu.RLock()
  defer s.mu.RUnlock()

  orders := make([]models.Order, 0, len(s.orders))
  for _, order := range s.orders {
    orders = append(orders, order.Clone())
  }
  return orders, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id models.OrderId, status string) (bool, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  index := s.find(id)
  if index < 0 {
    return false, nil
  }
  s.orders[index].Status = status

  return true, nil
}

func (s *MemoryStore) AppendNote(_ context.Context, id models.OrderId, note string) (bool, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  index := s.find(id)
  if index < 0 {
    return false, nil
  }
  s.orders[index].Notes = append(s.orders[index].Notes, note)

  return true, nil
}

func (s *MemoryStore) find(id models.OrderId) int {
  return slices.IndexFunc(s.orders, func(order models.Order) bool {
    return order.Id == id
  })
}
