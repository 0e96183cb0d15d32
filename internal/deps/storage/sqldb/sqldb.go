package sqldb

import (
  "context"
  "database/sql"
  "fmt"
  "os"
  "path/filepath"
  "strconv"
  "strings"
  "time"

  "github.com/go-playground/validator/v10"
  _ "github.com/lib/pq"
  log "github.com/sirupsen/logrus"
  _ "modernc.org/sqlite"
)

type Driver string

const (
  DriverSqlite   Driver = "sqlite"
  DriverPostgres Driver = "postgres"
)

type Config struct {
  Driver Driver `validate:"oneof=sqlite postgres"`
  DSN    string `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

// DB is a database handle that knows the placeholder style of its driver.
type DB struct {
  db     *sql.DB
  driver Driver
}

func Open(ctx context.Context, config Config) (*DB, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }
  dsn := config.DSN

  if config.Driver == DriverSqlite {
    if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
      return nil, fmt.Errorf("os.MkdirAll: %w", err)
    }
    dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
  }

  db, err := sql.Open(string(config.Driver), dsn)
  if err != nil {
    return nil, fmt.Errorf("sql.Open: %w", err)
  }
  if config.Driver == DriverSqlite {
    db.SetMaxOpenConns(1)
  } else {
    db.SetMaxOpenConns(10)
    db.SetMaxIdleConns(5)
    db.SetConnMaxLifetime(time.Hour)
  }

  if err = db.PingContext(ctx); err != nil {
    return nil, fmt.Errorf("db.PingContext: %w", err)
  }

  d := &DB{db: db, driver: config.Driver}

  if err = d.migrate(ctx); err != nil {
    return nil, fmt.Errorf("d.migrate: %w", err)
  }
  log.
    WithField("driver", config.Driver).
    Info("sql database opened")

  return d, nil
}

func (d *DB) Close() error {
  return d.db.Close()
}

func (d *DB) migrate(ctx context.Context) error {
  serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
  if d.driver == DriverPostgres {
    serial = "BIGSERIAL PRIMARY KEY"
  }

  statements := []string{
    `CREATE TABLE IF NOT EXISTS orders (
      id ` + serial + `,
      customer_id BIGINT NOT NULL,
      customer_handle TEXT NOT NULL,
      created_at TEXT NOT NULL,
      product_type TEXT NOT NULL,
      attributes TEXT NOT NULL,
      contact TEXT NOT NULL,
      status TEXT NOT NULL
    )`,
    `CREATE TABLE IF NOT EXISTS order_notes (
      id ` + serial + `,
      order_id BIGINT NOT NULL REFERENCES orders(id),
      note TEXT NOT NULL
    )`,
    `CREATE INDEX IF NOT EXISTS idx_order_notes_order ON order_notes(order_id)`,
  }

  for _, statement := range statements {
    if _, err := d.db.ExecContext(ctx, statement); err != nil {
      return fmt.Errorf("d.db.ExecContext: %w", err)
    }
  }
  return nil
}

// rebind turns ? placeholders into $n for postgres.
func (d *DB) rebind(query string) string {
  if d.driver != DriverPostgres {
    return query
  }
  sb := strings.Builder{}
  n := 0

  for _, r := range query {
    if r == '?' {
      n++
      sb.WriteString("$" + strconv.Itoa(n))
      continue
    }
    sb.WriteRune(r)
  }
  return sb.String()
}
