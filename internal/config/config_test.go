package config

import (
  "context"
  "os"
  "path/filepath"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestGet_Defaults(t *testing.T) {
  ctx := context.Background()

  t.Setenv(string(SendRetryAttempts), "")
  t.Setenv(string(SendRetryDelay), "")

  assert.Equal(t, 3, Get(ctx, SendRetryAttempts).Int())
  assert.Equal(t, 2*time.Second, Get(ctx, SendRetryDelay).Duration())
}

func TestGet_Overrides(t *testing.T) {
  ctx := context.Background()

  t.Setenv(string(MaxPhotoSize), "1024")
  t.Setenv(string(AdminIds), " 1, 2 ,,3 ")
  t.Setenv(string(StepTimeout), "bogus")

  assert.EqualValues(t, 1024, Get(ctx, MaxPhotoSize).Int64())
  assert.Equal(t, []string{"1", "2", "3"}, Get(ctx, AdminIds).Strings())
  assert.Equal(t, time.Minute, Get(ctx, StepTimeout).Duration())
}

func TestLoad(t *testing.T) {
  dir := t.TempDir()
  file := filepath.Join(dir, "test.env")

  require.NoError(t, os.WriteFile(file, []byte("MINI_APP_URL=https://app.example.com\n"), 0o600))
  t.Setenv(string(MiniAppURL), "")
  require.NoError(t, os.Unsetenv(string(MiniAppURL)))

  require.NoError(t, Load(file, filepath.Join(dir, "missing.env")))
  assert.Equal(t, "https://app.example.com", Get(context.Background(), MiniAppURL).String())
}
