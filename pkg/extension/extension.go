package extension

import (
  "net/url"
  "path"
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extImage = set.NewSet("jpg", "jpeg", "png", "webp")

// IsImage reports whether a file name or URL points to a raster image Telegram accepts as photo.
func IsImage(source string) bool {
  ext := strings.TrimPrefix(Of(source), ".")

  if ext == "" {
    return false
  }
  return extImage.ContainsOne(ext)
}

// Of returns the lowercased extension of a file name or URL path, with the dot.
func Of(source string) string {
  if u, err := url.Parse(source); err == nil && u.Scheme != "" {
    source = u.Path
  }
  return strings.ToLower(path.Ext(source))
}
