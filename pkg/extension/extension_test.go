package extension

import (
  "testing"

  "github.com/stretchr/testify/assert"
)

func TestIsImage(t *testing.T) {
  assert.True(t, IsImage("assets/krug.jpeg"))
  assert.True(t, IsImage("https://cdn.example.com/a/b.PNG?v=12"))
  assert.False(t, IsImage("assets/readme"))
  assert.False(t, IsImage("https://cdn.example.com/a/b.svg"))
}

func TestOf(t *testing.T) {
  assert.Equal(t, ".png", Of("https://cdn.example.com/a/b.PNG?v=12"))
  assert.Equal(t, "", Of("assets/readme"))
}
