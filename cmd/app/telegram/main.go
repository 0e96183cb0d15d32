package main

import (
  "context"
  "fmt"
  "net/http"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/admin"
  "github.com/ushakovn/sumki/internal/app/dialogue"
  "github.com/ushakovn/sumki/internal/app/filter"
  "github.com/ushakovn/sumki/internal/app/media"
  "github.com/ushakovn/sumki/internal/app/notifier"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/app/session"
  tgtransport "github.com/ushakovn/sumki/internal/app/telegram"
  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/config"
  "github.com/ushakovn/sumki/internal/deps/storage/mongodb"
  "github.com/ushakovn/sumki/internal/deps/storage/redis"
  "github.com/ushakovn/sumki/internal/deps/storage/sqldb"
  tgbot "github.com/ushakovn/sumki/internal/deps/telegram"
  "github.com/ushakovn/sumki/internal/metrics"
  "github.com/ushakovn/sumki/pkg/logger"
  "github.com/ushakovn/sumki/pkg/retry"
)

const shutdownTimeout = 10 * time.Second

func main() {
  ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  if err := config.Load(); err != nil {
    log.Fatalf("config.Load: %v", err)
  }
  logger.Init(logger.Options{
    Level:  config.Get(ctx, config.LogLevel).String(),
    Fields: map[string]any{"app": "sumki-bot"},
  })

  log.Warn("telegram bot app initializing")

  policy := retry.Policy{
    Attempts: config.Get(ctx, config.SendRetryAttempts).Int(),
    Delay:    config.Get(ctx, config.SendRetryDelay).Duration(),
  }

  goodsCatalog, err := catalog.Load(config.Get(ctx, config.CatalogPath).String())
  if err != nil {
    log.Fatalf("catalog.Load: %v", err)
  }
  if url := config.Get(ctx, config.MiniAppURL).String(); url != "" {
    goodsCatalog.MiniApp.URL = url
  }

  orderStore, closeOrders, err := newOrderStore(ctx)
  if err != nil {
    log.Fatalf("newOrderStore: %v", err)
  }
  sessionStore, closeSessions, err := newSessionStore(ctx)
  if err != nil {
    log.Fatalf("newSessionStore: %v", err)
  }

  telegramBotClient, err := tgbot.NewBotClient(tgbot.Config{
    Token:       config.Get(ctx, config.TelegramToken).String(),
    HTTPTimeout: config.Get(ctx, config.TelegramHTTPTimeout).Duration(),
  })
  if err != nil {
    log.Fatalf("tgbot.NewBotClient: %v", err)
  }

  transport, err := tgtransport.NewTransport(tgtransport.Dependencies{
    Telegram: telegramBotClient,
  })
  if err != nil {
    log.Fatalf("tgtransport.NewTransport: %v", err)
  }

  orderNotifier, err := notifier.NewNotifier(notifier.Config{
    OperatorChatId: config.Get(ctx, config.OperatorChatId).Int64(),
    Retry:          policy,
  }, notifier.Dependencies{
    Sink: transport,
  })
  if err != nil {
    log.Fatalf("notifier.NewNotifier: %v", err)
  }

  gateway, err := admin.NewGateway(admin.Config{
    AdminIds:         config.Get(ctx, config.AdminIds).Strings(),
    MaxMessageLength: config.Get(ctx, config.MaxMessageLength).Int(),
    Retry:            policy,
  }, admin.Dependencies{
    Orders: orderStore,
    Sink:   transport,
    Pinger: orderNotifier,
  })
  if err != nil {
    log.Fatalf("admin.NewGateway: %v", err)
  }

  loader := media.NewLoader(media.Config{
    AssetsDir: config.Get(ctx, config.AssetsDir).String(),
    Workers:   config.Get(ctx, config.MediaWorkers).Int(),
  }, media.Dependencies{
    Client: resty.NewWithClient(http.DefaultClient).SetTimeout(15 * time.Second),
  })

  engine, err := dialogue.NewEngine(dialogue.Config{
    MaxPhotoSize: config.Get(ctx, config.MaxPhotoSize).Int64(),
    MaxPhotos:    config.Get(ctx, config.MaxPhotosPerOrder).Int(),
    StepTimeout:  config.Get(ctx, config.StepTimeout).Duration(),
    Retry:        policy,
  }, dialogue.Dependencies{
    Sessions: sessionStore,
    Orders:   orderStore,
    Sink:     transport,
    Filter:   filter.New(),
    Media:    loader,
    Notifier: orderNotifier,
    Catalog:  goodsCatalog,
  })
  if err != nil {
    log.Fatalf("dialogue.NewEngine: %v", err)
  }

  transport.Bind(engine, gateway, orderNotifier)

  if addr := config.Get(ctx, config.MetricsAddr).String(); addr != "" {
    go func() {
      if err := metrics.Serve(ctx, addr); err != nil {
        log.Errorf("metrics.Serve: %v", err)
      }
    }()
  }

  if err = transport.Start(ctx); err != nil {
    log.Fatalf("transport.Start: %v", err)
  }
  log.Warn("telegram bot app started")

  <-ctx.Done()

  log.Warn("telegram bot app terminating")

  transport.Wait()

  shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
  defer cancel()

  if err = closeSessions(shutdownCtx); err != nil {
    log.Errorf("closeSessions: %v", err)
  }
  if err = closeOrders(shutdownCtx); err != nil {
    log.Errorf("closeOrders: %v", err)
  }
}

// closer releases a store connection on shutdown.
type closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

func newOrderStore(ctx context.Context) (orders.Store, closer, error) {
  kind := config.Get(ctx, config.OrderStore).String()

  switch kind {

  case "memory":
    return orders.NewMemoryStore(), noopCloser, nil

  case "mongodb":
    var auth *mongodb.Authentication

    if user := config.Get(ctx, config.MongodbUser).String(); user != "" {
      auth = &mongodb.Authentication{
        User:     user,
        Password: config.Get(ctx, config.MongodbPassword).String(),
      }
    }
    client, err := mongodb.NewClient(ctx, mongodb.Config{
      Host:           config.Get(ctx, config.MongodbHost).String(),
      Port:           config.Get(ctx, config.MongodbPort).String(),
      Database:       config.Get(ctx, config.MongodbDatabase).String(),
      Authentication: auth,
    }, mongodb.Dependencies{
      Client: http.DefaultClient,
    })
    if err != nil {
      return nil, nil, fmt.Errorf("mongodb.NewClient: %w", err)
    }
    return mongodb.NewOrderStore(client), client.Close, nil

  case "sqlite":
    db, err := sqldb.Open(ctx, sqldb.Config{
      Driver: sqldb.DriverSqlite,
      DSN:    config.Get(ctx, config.SqlitePath).String(),
    })
    if err != nil {
      return nil, nil, fmt.Errorf("sqldb.Open: %w", err)
    }
    return sqldb.NewOrderStore(db), func(context.Context) error { return db.Close() }, nil

  case "postgres":
    db, err := sqldb.Open(ctx, sqldb.Config{
      Driver: sqldb.DriverPostgres,
      DSN:    config.Get(ctx, config.PostgresDSN).String(),
    })
    if err != nil {
      return nil, nil, fmt.Errorf("sqldb.Open: %w", err)
    }
    return sqldb.NewOrderStore(db), func(context.Context) error { return db.Close() }, nil
  }

  return nil, nil, fmt.Errorf("unknown order store %q", kind)
}

func newSessionStore(ctx context.Context) (session.Store, closer, error) {
  kind := config.Get(ctx, config.SessionStore).String()
  ttl := config.Get(ctx, config.SessionTTL).Duration()

  switch kind {

  case "memory":
    return session.NewMemoryStore(ttl), noopCloser, nil

  case "redis":
    store, err := redis.NewSessionStore(ctx, redis.Config{
      Addr:     config.Get(ctx, config.RedisAddr).String(),
      Password: config.Get(ctx, config.RedisPassword).String(),
      DB:       config.Get(ctx, config.RedisDB).Int(),
      TTL:      ttl,
    })
    if err != nil {
      return nil, nil, fmt.Errorf("redis.NewSessionStore: %w", err)
    }
    return store, func(context.Context) error { return store.Close() }, nil
  }

  return nil, nil, fmt.Errorf("unknown session store %q", kind)
}
