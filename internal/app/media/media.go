package media

import (
  "context"
  "fmt"
  "os"
  "path/filepath"
  "sync"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/cache"
  "github.com/ushakovn/sumki/pkg/extension"
  "github.com/ushakovn/sumki/pkg/validator"
  "github.com/ushakovn/sumki/pkg/worker"
)

// MaxPhotoBytes is the upload limit for photos sent by a bot.
const MaxPhotoBytes = 10 << 20

type Loader struct {
  config Config
  deps   Dependencies
  cache  *cache.Cache[string, []byte]
}

type Config struct {
  AssetsDir string
  Workers   int
}

type Dependencies struct {
  Client *resty.Client
}

func NewLoader(config Config, deps Dependencies) *Loader {
  if deps.Client == nil {
    deps.Client = resty.New()
  }
  return &Loader{
    config: config,
    deps:   deps,
    cache:  cache.NewCache[string, []byte](0),
  }
}

// Load reads every illustration concurrently. Results keep the input order
// and each one carries either data or its own error.
func (l *Loader) Load(ctx context.Context, illustrations []models.Illustration) []models.IllustrationResult {
  results := make([]models.IllustrationResult, len(illustrations))

  if len(illustrations) == 0 {
    return results
  }
  pool := worker.NewPool(ctx, min(max(l.config.Workers, 1), len(illustrations)))

  var mu sync.Mutex

  for index, illustration := range illustrations {
    pool.Push(func(ctx context.Context) error {
      data, err := l.load(ctx, illustration.Source)

      mu.Lock()
      results[index] = models.IllustrationResult{
        Illustration: illustration,
        Data:         data,
        Err:          err,
      }
      mu.Unlock()

      if err != nil {
        log.
          WithField("source", illustration.Source).
          Warnf("l.load: %v", err)
      }
      return nil
    })
  }
  pool.StopWait()

  return results
}

func (l *Loader) load(ctx context.Context, source string) ([]byte, error) {
  if !extension.IsImage(source) {
    return nil, fmt.Errorf("not an image: %s", source)
  }
  if data, ok := l.cache.Get(source); ok {
    return data, nil
  }

  var (
    data []byte
    err  error
  )
  if validator.IsRemote(source) {
    data, err = l.fetch(ctx, source)
  } else {
    data, err = l.read(source)
  }
  if err != nil {
    return nil, err
  }
  if len(data) == 0 {
    return nil, fmt.Errorf("empty image: %s", source)
  }
  if len(data) > MaxPhotoBytes {
    return nil, fmt.Errorf("image %s too large: %d bytes", source, len(data))
  }
  l.cache.Set(source, data)

  return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
  resp, err := l.deps.Client.R().SetContext(ctx).Get(url)
  if err != nil {
    return nil, fmt.Errorf("resty.Client.Get: %w", err)
  }
  if resp.IsError() {
    return nil, fmt.Errorf("resty.Client.Get: %s: status %d", url, resp.StatusCode())
  }
  return resp.Body(), nil
}

func (l *Loader) read(source string) ([]byte, error) {
  if !filepath.IsAbs(source) {
    source = filepath.Join(l.config.AssetsDir, source)
  }
  data, err := os.ReadFile(source)
  if err != nil {
    return nil, fmt.Errorf("os.ReadFile: %w", err)
  }
  return data, nil
}

// Compose turns successful results into media group items.
func Compose(results []models.IllustrationResult) []models.MediaItem {
  var items []models.MediaItem

  for index, result := range results {
    if result.Err != nil || len(result.Data) == 0 {
      continue
    }
    items = append(items, models.MediaItem{
      Name:    fmt.Sprintf("illustration_%d%s", index, extension.Of(result.Illustration.Source)),
      Caption: result.Illustration.Caption,
      Data:    result.Data,
    })
  }
  return items
}
