package hasher

import (
  "crypto/sha256"
  "fmt"
)

func SHA256(value string) string {
  hash := sha256.New()
  hash.Write([]byte(value))

  return fmt.Sprintf("%x", hash.Sum(nil))
}

// Short returns the first 12 hex chars of the SHA256 digest.
func Short(value string) string {
  return SHA256(value)[:12]
}
