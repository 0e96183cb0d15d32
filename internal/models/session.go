package models

import (
  "slices"
  "time"
)

type Stage string

const (
  StageStart          Stage = "start"
  StageChooseProduct  Stage = "choose_product"
  StageCustomOrder    Stage = "custom_order"
  StageChooseSize     Stage = "choose_size"
  StageChooseShape    Stage = "choose_shape"
  StageChooseMaterial Stage = "choose_material"
  StageChooseColor    Stage = "choose_color"
  StageChooseOptions  Stage = "choose_options"
  StagePreview        Stage = "preview"
  StageContact        Stage = "contact"
  StageSubmitted      Stage = "submitted"
)

type UserId = int64

type ChatId = int64

// Session is the per-user dialogue record. History is the only stored
// position: the current stage is always its top entry.
type Session struct {
  UserId    UserId      `bson:"user_id" json:"user_id"`
  ChatId    ChatId      `bson:"chat_id" json:"chat_id"`
  History   []Stage     `bson:"history" json:"history"`
  Fields    OrderFields `bson:"fields" json:"fields"`
  UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

type OrderFields struct {
  Product           ProductType `bson:"product" json:"product,omitempty"`
  Size              string      `bson:"size" json:"size,omitempty"`
  Shape             string      `bson:"shape" json:"shape,omitempty"`
  Material          string      `bson:"material" json:"material,omitempty"`
  Color             string      `bson:"color" json:"color,omitempty"`
  Options           []string    `bson:"options" json:"options,omitempty"`
  CustomDescription string      `bson:"custom_description" json:"custom_description,omitempty"`
  CustomPhotoIds    []string    `bson:"custom_photo_ids" json:"custom_photo_ids,omitempty"`
  Contact           string      `bson:"contact" json:"contact,omitempty"`
}

func NewSession(userId UserId, chatId ChatId) *Session {
  return &Session{
    UserId:    userId,
    ChatId:    chatId,
    History:   []Stage{StageStart},
    UpdatedAt: time.Now(),
  }
}

func (s *Session) Stage() Stage {
  if len(s.History) == 0 {
    return StageStart
  }
  return s.History[len(s.History)-1]
}

// Enter records a rendered stage on top of the history.
func (s *Session) Enter(stage Stage) {
  s.History = append(s.History, stage)
}

// Back drops the current stage and the one below it and returns the latter,
// so the caller can render it again with Enter. With fewer than two entries
// the session is left untouched.
func (s *Session) Back() (Stage, bool) {
  if len(s.History) < 2 {
    return "", false
  }
  target := s.History[len(s.History)-2]
  s.History = s.History[:len(s.History)-2]

  return target, true
}

// Reset clears the dialogue and leaves the session at an empty history.
func (s *Session) Reset() {
  s.History = nil
  s.Fields = OrderFields{}
}

func (s *Session) Clone() *Session {
  cop := *s
  cop.History = slices.Clone(s.History)
  cop.Fields = s.Fields.Clone()

  return &cop
}

func (f OrderFields) Clone() OrderFields {
  cop := f
  cop.Options = slices.Clone(f.Options)
  cop.CustomPhotoIds = slices.Clone(f.CustomPhotoIds)

  return cop
}

// AddOption appends an option once. It reports whether the option was new.
func (f *OrderFields) AddOption(option string) bool {
  if slices.Contains(f.Options, option) {
    return false
  }
  f.Options = append(f.Options, option)

  return true
}
