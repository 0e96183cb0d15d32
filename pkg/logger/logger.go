package logger

import (
  "os"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/boiler/pkg/env"
)

// fieldsHook attaches static fields to every entry that does not set them.
type fieldsHook map[string]any

func (h fieldsHook) Levels() []log.Level {
  return log.AllLevels
}

func (h fieldsHook) Fire(entry *log.Entry) error {
  for k, v := range h {
    if _, exists := entry.Data[k]; !exists {
      entry.Data[k] = v
    }
  }
  return nil
}

type Options struct {
  Level  string
  Fields map[string]any
}

func Init(opts Options) {
  var (
    format log.Formatter
    caller bool
  )

  switch env.AppEnv() {

  case env.ProductionEnv:
    format = new(log.JSONFormatter)
    caller = true

  default:
    format = &log.TextFormatter{FullTimestamp: true}
  }

  level, err := log.ParseLevel(opts.Level)
  if err != nil {
    level = log.InfoLevel
  }

  log.SetOutput(os.Stdout)
  log.SetFormatter(format)
  log.SetLevel(level)
  log.SetReportCaller(caller)

  if len(opts.Fields) > 0 {
    log.AddHook(fieldsHook(opts.Fields))
  }
}
