package models

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSession_BackPopsTwice(t *testing.T) {
  sess := NewSession(1, 1)
  sess.Enter(StageChooseProduct)
  sess.Enter(StageChooseSize)

  target, ok := sess.Back()
  require.True(t, ok)
  assert.Equal(t, StageChooseProduct, target)
  assert.Equal(t, []Stage{StageStart}, sess.History)

  sess.Enter(target)
  assert.Equal(t, StageChooseProduct, sess.Stage())
}

func TestSession_BackWithoutPrevious(t *testing.T) {
  sess := NewSession(1, 1)

  _, ok := sess.Back()
  assert.False(t, ok)
  assert.Equal(t, []Stage{StageStart}, sess.History)
}

func TestSession_CloneIsDeep(t *testing.T) {
  sess := NewSession(1, 1)
  sess.Fields.AddOption("Подклад")

  cop := sess.Clone()
  cop.Enter(StagePreview)
  cop.Fields.AddOption("Застёжка")

  assert.Equal(t, StageStart, sess.Stage())
  assert.Equal(t, []string{"Подклад"}, sess.Fields.Options)
}

func TestOrderFields_AddOptionIsIdempotent(t *testing.T) {
  var fields OrderFields

  assert.True(t, fields.AddOption("Clasp"))
  assert.False(t, fields.AddOption("Clasp"))
  assert.True(t, fields.AddOption("Lining"))
  assert.Equal(t, []string{"Clasp", "Lining"}, fields.Options)
}
