package media

import (
  "context"
  "net/http"
  "net/http/httptest"
  "os"
  "path/filepath"
  "sync/atomic"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/ushakovn/sumki/internal/models"
)

func TestLoader_Load(t *testing.T) {
  dir := t.TempDir()
  require.NoError(t, os.WriteFile(filepath.Join(dir, "krug.jpeg"), []byte("krug"), 0o600))

  var requests atomic.Int32
  server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    requests.Add(1)

    if r.URL.Path == "/missing.png" {
      w.WriteHeader(http.StatusNotFound)
      return
    }
    _, _ = w.Write([]byte("remote"))
  }))
  defer server.Close()

  loader := NewLoader(Config{AssetsDir: dir, Workers: 2}, Dependencies{})

  illustrations := []models.Illustration{
    {Caption: "Круглая", Source: "krug.jpeg"},
    {Caption: "Сердце", Source: "serdce.jpeg"},
    {Source: server.URL + "/akril.png?v=1"},
    {Source: server.URL + "/missing.png"},
    {Source: "readme.txt"},
  }

  results := loader.Load(context.Background(), illustrations)
  require.Len(t, results, 5)

  assert.NoError(t, results[0].Err)
  assert.Equal(t, []byte("krug"), results[0].Data)
  assert.Error(t, results[1].Err)
  assert.NoError(t, results[2].Err)
  assert.Equal(t, []byte("remote"), results[2].Data)
  assert.Error(t, results[3].Err)
  assert.Error(t, results[4].Err)

  for i, result := range results {
    assert.Equal(t, illustrations[i], result.Illustration)
  }

  items := Compose(results)
  require.Len(t, items, 2)
  assert.Equal(t, "Круглая", items[0].Caption)
  assert.Equal(t, "illustration_0.jpeg", items[0].Name)
  assert.Equal(t, []byte("remote"), items[1].Data)

  before := requests.Load()
  loader.Load(context.Background(), illustrations[2:3])
  assert.Equal(t, before, requests.Load())
}

func TestLoader_Empty(t *testing.T) {
  loader := NewLoader(Config{}, Dependencies{})

  assert.Empty(t, loader.Load(context.Background(), nil))
  assert.Empty(t, Compose(nil))
}
