package config

import (
  "context"
  "errors"
  "fmt"
  "io/fs"
  "os"
  "strings"
  "time"

  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"
  "github.com/spf13/cast"
)

type Value struct {
  key Key
  raw string
}

// Load reads .env files into the process environment. Variables already set win.
func Load(files ...string) error {
  if len(files) == 0 {
    files = []string{".env"}
  }
  for _, file := range files {
    if err := godotenv.Load(file); err != nil {
      if errors.Is(err, fs.ErrNotExist) {
        continue
      }
      return fmt.Errorf("godotenv.Load: %s: %w", file, err)
    }
  }
  return nil
}

func Get(_ context.Context, key Key) Value {
  raw, ok := os.LookupEnv(string(key))
  if !ok || strings.TrimSpace(raw) == "" {
    raw = defaults[key]
  }
  return Value{
    key: key,
    raw: strings.TrimSpace(raw),
  }
}

func (v Value) String() string {
  return v.raw
}

func (v Value) Int() int {
  i, err := cast.ToIntE(v.raw)
  if err != nil {
    v.warn(err)
    return cast.ToInt(defaults[v.key])
  }
  return i
}

func (v Value) Int64() int64 {
  i, err := cast.ToInt64E(v.raw)
  if err != nil {
    v.warn(err)
    return cast.ToInt64(defaults[v.key])
  }
  return i
}

func (v Value) Duration() time.Duration {
  d, err := cast.ToDurationE(v.raw)
  if err != nil {
    v.warn(err)
    return cast.ToDuration(defaults[v.key])
  }
  return d
}

// Strings splits a comma separated value and drops empty items.
func (v Value) Strings() []string {
  var values []string

  for _, part := range strings.Split(v.raw, ",") {
    if part = strings.TrimSpace(part); part != "" {
      values = append(values, part)
    }
  }
  return values
}

func (v Value) warn(err error) {
  if v.raw == "" {
    return
  }
  log.
    WithField("key", v.key).
    Warnf("config: invalid value, using default: %v", err)
}
