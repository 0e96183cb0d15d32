package config

type Key string

const (
  LogLevel            Key = "LOG_LEVEL"
  TelegramToken       Key = "TELEGRAM_TOKEN"
  TelegramHTTPTimeout Key = "TELEGRAM_HTTP_TIMEOUT"
  OperatorChatId      Key = "OPERATOR_CHAT_ID"
  AdminIds            Key = "ADMIN_IDS"
  MaxPhotoSize        Key = "MAX_PHOTO_SIZE"
  MaxPhotosPerOrder   Key = "MAX_PHOTOS_PER_ORDER"
  SendRetryAttempts   Key = "SEND_RETRY_ATTEMPTS"
  SendRetryDelay      Key = "SEND_RETRY_DELAY"
  MaxMessageLength    Key = "MAX_MESSAGE_LENGTH"
  StepTimeout         Key = "STEP_TIMEOUT"

  OrderStore       Key = "ORDER_STORE"
  MongodbHost      Key = "MONGODB_HOST"
  MongodbPort      Key = "MONGODB_PORT"
  MongodbUser      Key = "MONGODB_USER"
  MongodbPassword  Key = "MONGODB_PASSWORD"
  MongodbDatabase  Key = "MONGODB_DATABASE"
  SqlitePath       Key = "SQLITE_PATH"
  PostgresDSN      Key = "POSTGRES_DSN"
  SessionStore     Key = "SESSION_STORE"
  RedisAddr        Key = "REDIS_ADDR"
  RedisPassword    Key = "REDIS_PASSWORD"
  RedisDB          Key = "REDIS_DB"
  SessionTTL       Key = "SESSION_TTL"

  CatalogPath  Key = "CATALOG_PATH"
  AssetsDir    Key = "ASSETS_DIR"
  MiniAppURL   Key = "MINI_APP_URL"
  MediaWorkers Key = "MEDIA_WORKERS"
  MetricsAddr  Key = "METRICS_ADDR"
)

var defaults = map[Key]string{
  LogLevel:            "info",
  TelegramHTTPTimeout: "30s",
  MaxPhotoSize:        "5242880",
  MaxPhotosPerOrder:   "5",
  SendRetryAttempts:   "3",
  SendRetryDelay:      "2s",
  MaxMessageLength:    "4000",
  StepTimeout:         "60s",
  OrderStore:          "sqlite",
  MongodbHost:         "localhost",
  MongodbPort:         "27017",
  MongodbDatabase:     "sumki",
  SqlitePath:          "orders.db",
  SessionStore:        "memory",
  RedisAddr:           "localhost:6379",
  RedisDB:             "0",
  SessionTTL:          "24h",
  AssetsDir:           "assets",
  MediaWorkers:        "4",
}
