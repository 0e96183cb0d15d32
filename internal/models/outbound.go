package models

import "context"

type ParseMode string

const (
  ParseModeNone     ParseMode = ""
  ParseModeMarkdown ParseMode = "MarkdownV2"
  ParseModeHTML     ParseMode = "HTML"
)

// Sink delivers outbound messages to a chat.
type Sink interface {
  SendText(ctx context.Context, message TextMessage) (Delivery, error)
  SendMediaGroup(ctx context.Context, message MediaGroupMessage) (Delivery, error)
  SendPhoto(ctx context.Context, message PhotoMessage) (Delivery, error)
}

type Delivery struct {
  MessageId int
}

type TextMessage struct {
  ChatId    ChatId
  Text      string
  ParseMode ParseMode
  Keyboard  *Keyboard
}

type MediaGroupMessage struct {
  ChatId ChatId
  Items  []MediaItem
}

type MediaItem struct {
  Name    string
  Caption string
  Data    []byte
}

type PhotoMessage struct {
  ChatId  ChatId
  FileId  string
  Caption string
}

type KeyboardKind string

const (
  KeyboardReply  KeyboardKind = "reply"
  KeyboardInline KeyboardKind = "inline"
  KeyboardRemove KeyboardKind = "remove"
)

type Keyboard struct {
  Kind KeyboardKind
  Rows [][]Button
}

type Button struct {
  Text           string
  Callback       string
  WebAppURL      string
  RequestContact bool
}

func NewReplyKeyboard(rows ...[]Button) *Keyboard {
  return &Keyboard{Kind: KeyboardReply, Rows: rows}
}

func NewInlineKeyboard(rows ...[]Button) *Keyboard {
  return &Keyboard{Kind: KeyboardInline, Rows: rows}
}

func RemoveKeyboard() *Keyboard {
  return &Keyboard{Kind: KeyboardRemove}
}

func Row(texts ...string) []Button {
  row := make([]Button, 0, len(texts))
  for _, text := range texts {
    row = append(row, Button{Text: text})
  }
  return row
}

// Illustration is a picture shown next to a choice prompt. Source is either a
// file path relative to the assets directory or an http(s) URL.
type Illustration struct {
  Caption string `yaml:"caption" json:"caption"`
  Source  string `yaml:"source" json:"source"`
}

type IllustrationResult struct {
  Illustration Illustration
  Data         []byte
  Err          error
}
