package validator

import (
  "net/url"
  "strings"
)

func URL(value string) error {
  _, err := url.ParseRequestURI(value)
  return err
}

// IsRemote reports whether value is an absolute http(s) URL.
func IsRemote(value string) bool {
  if URL(value) != nil {
    return false
  }
  return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
