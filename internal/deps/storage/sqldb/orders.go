package sqldb

import (
  "context"
  "database/sql"
  "encoding/json"
  "fmt"
  "time"

  "github.com/ushakovn/sumki/internal/models"
)

// OrderStore keeps orders in the orders table and their notes, in insertion
// order, in order_notes.
type OrderStore struct {
  db *DB
}

func NewOrderStore(db *DB) *OrderStore {
  return &OrderStore{db: db}
}

func (s *OrderStore) Append(ctx context.Context, order models.Order) (models.OrderId, error) {
  attributes, err := json.Marshal(order.Attributes)
  if err != nil {
    return 0, fmt.Errorf("json.Marshal: %w", err)
  }
  status := order.Status
  if status == "" {
    status = models.OrderStatusNew
  }

  query := s.db.rebind(`
    INSERT INTO orders (customer_id, customer_handle, created_at, product_type, attributes, contact, status)
    VALUES (?, ?, ?, ?, ?, ?, ?)
    RETURNING id`)

  var id models.OrderId

  err = s.db.db.QueryRowContext(ctx, query,
    order.CustomerId,
    order.CustomerHandle,
    order.CreatedAt.UTC().Format(time.RFC3339Nano),
    string(order.ProductType),
    string(attributes),
    order.Contact,
    status,
  ).Scan(&id)

  if err != nil {
    return 0, fmt.Errorf("s.db.db.QueryRowContext: %w", err)
  }
  for _, note := range order.Notes {
    if _, err = s.AppendNote(ctx, id, note); err != nil {
      return 0, fmt.Errorf("s.AppendNote: %w", err)
    }
  }
  return id, nil
}

func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
  rows, err := s.db.db.QueryContext(ctx, `
    SELECT id, customer_id, customer_handle, created_at, product_type, attributes, contact, status
    FROM orders ORDER BY id`)
  if err != nil {
    return nil, fmt.Errorf("s.db.db.QueryContext: %w", err)
  }
  defer rows.Close()

  var (
    list  []models.Order
    index = map[models.OrderId]int{}
  )

  for rows.Next() {
    var (
      order      models.Order
      createdAt  string
      attributes string
    )
    err = rows.Scan(
      &order.Id, &order.CustomerId, &order.CustomerHandle, &createdAt,
      &order.ProductType, &attributes, &order.Contact, &order.Status,
    )
    if err != nil {
      return nil, fmt.Errorf("rows.Scan: %w", err)
    }
    if order.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
      return nil, fmt.Errorf("time.Parse: %w", err)
    }
    if err = json.Unmarshal([]byte(attributes), &order.Attributes); err != nil {
      return nil, fmt.Errorf("json.Unmarshal: %w", err)
    }
    order.Notes = []string{}

    index[order.Id] = len(list)
    list = append(list, order)
  }
  if err = rows.Err(); err != nil {
    return nil, fmt.Errorf("rows.Err: %w", err)
  }

  if err = s.attachNotes(ctx, list, index); err != nil {
    return nil, fmt.Errorf("s.attachNotes: %w", err)
  }
  return list, nil
}

func (s *OrderStore) attachNotes(ctx context.Context, list []models.Order, index map[models.OrderId]int) error {
  rows, err := s.db.db.QueryContext(ctx, `SELECT order_id, note FROM order_notes ORDER BY id`)
  if err != nil {
    return fmt.Errorf("s.db.db.QueryContext: %w", err)
  }
  defer rows.Close()

  for rows.Next() {
    var (
      orderId models.OrderId
      note    string
    )
    if err = rows.Scan(&orderId, &note); err != nil {
      return fmt.Errorf("rows.Scan: %w", err)
    }
    if i, ok := index[orderId]; ok {
      list[i].Notes = append(list[i].Notes, note)
    }
  }
  return rows.Err()
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id models.OrderId, status string) (bool, error) {
  res, err := s.db.db.ExecContext(ctx, s.db.rebind(`UPDATE orders SET status = ? WHERE id = ?`), status, id)
  if err != nil {
    return false, fmt.Errorf("s.db.db.ExecContext: %w", err)
  }
  return affected(res)
}

func (s *OrderStore) AppendNote(ctx context.Context, id models.OrderId, note string) (bool, error) {
  query := s.db.rebind(`INSERT INTO order_notes (order_id, note) SELECT id, ? FROM orders WHERE id = ?`)

  res, err := s.db.db.ExecContext(ctx, query, note, id)
  if err != nil {
    return false, fmt.Errorf("s.db.db.ExecContext: %w", err)
  }
  return affected(res)
}

func affected(res sql.Result) (bool, error) {
  count, err := res.RowsAffected()
  if err != nil {
    return false, fmt.Errorf("res.RowsAffected: %w", err)
  }
  return count > 0, nil
}
