package stringer

import (
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
  assert.Equal(t, "Сумка с ручкой", SanitizeString("  <b>Сумка</b>   с ручкой "))
  assert.Equal(t, "a & b", SanitizeString("a &amp; b"))
}

func TestFold(t *testing.T) {
  assert.Equal(t, "еж", Fold("ЁЖ"))
}

func TestOr(t *testing.T) {
  assert.Equal(t, "не указано", Or("  ", "не указано"))
  assert.Equal(t, "M", Or("M", "не указано"))
}

func TestSplitRunes(t *testing.T) {
  s := strings.Repeat("я", 9)

  chunks := SplitRunes(s, 4)
  require.Len(t, chunks, 3)
  assert.Equal(t, "яяяя", chunks[0])
  assert.Equal(t, "яяяя", chunks[1])
  assert.Equal(t, "я", chunks[2])

  assert.Equal(t, []string{"abc"}, SplitRunes("abc", 10))
  assert.Nil(t, SplitRunes("", 10))
}
