package telegram

import (
  "fmt"
  "net/http"
  "time"

  "github.com/go-playground/validator/v10"
  tgbot "github.com/go-telegram/bot"
  log "github.com/sirupsen/logrus"
)

const pollTimeout = time.Minute

type Config struct {
  Token       string        `validate:"required"`
  HTTPTimeout time.Duration `validate:"min=0"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

func NewBotClient(config Config) (*tgbot.Bot, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("config.Validate: %w", err)
  }
  client := &http.Client{
    Timeout: pollTimeout + config.HTTPTimeout,
  }

  bot, err := tgbot.New(config.Token,
    tgbot.WithHTTPClient(pollTimeout, client),
    tgbot.WithErrorsHandler(func(err error) {
      log.Errorf("telegram bot: %v", err)
    }),
  )
  if err != nil {
    return nil, fmt.Errorf("tgbot.New: %w", err)
  }
  log.Info("telegram bot client connection successfully")

  return bot, nil
}
