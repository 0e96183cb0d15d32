package metrics

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "time"

  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/promhttp"
  log "github.com/sirupsen/logrus"
)

var (
  StageEntries = prometheus.NewCounterVec(
    prometheus.CounterOpts{
      Name: "sumki_stage_entries_total",
      Help: "Number of dialogue stage renders.",
    },
    []string{"stage"},
  )
  Outcomes = prometheus.NewCounterVec(
    prometheus.CounterOpts{
      Name: "sumki_dialogue_outcomes_total",
      Help: "Number of handled dialogue events by outcome.",
    },
    []string{"outcome"},
  )
  Deliveries = prometheus.NewCounterVec(
    prometheus.CounterOpts{
      Name: "sumki_order_deliveries_total",
      Help: "Operator notifications by strategy that delivered them.",
    },
    []string{"strategy"},
  )
  AdminCommands = prometheus.NewCounterVec(
    prometheus.CounterOpts{
      Name: "sumki_admin_commands_total",
      Help: "Operator commands by command and outcome.",
    },
    []string{"command", "outcome"},
  )
  StepDuration = prometheus.NewHistogramVec(
    prometheus.HistogramOpts{
      Name:    "sumki_step_duration_seconds",
      Help:    "Dialogue step duration.",
      Buckets: prometheus.DefBuckets,
    },
    []string{"stage"},
  )
)

func init() {
  prometheus.MustRegister(StageEntries, Outcomes, Deliveries, AdminCommands, StepDuration)
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
  mux := http.NewServeMux()
  mux.Handle("/metrics", promhttp.Handler())

  server := &http.Server{
    Addr:              addr,
    Handler:           mux,
    ReadHeaderTimeout: 5 * time.Second,
  }

  go func() {
    <-ctx.Done()

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := server.Shutdown(shutdownCtx); err != nil {
      log.Errorf("metrics: server.Shutdown: %v", err)
    }
  }()

  log.WithField("addr", addr).Info("metrics: serving")

  if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
    return fmt.Errorf("server.ListenAndServe: %w", err)
  }
  return nil
}
