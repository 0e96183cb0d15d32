package telegram

import (
  "bytes"
  "context"
  "errors"
  "fmt"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  "github.com/samber/lo"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/retry"
)

func (b *Transport) SendText(ctx context.Context, message models.TextMessage) (models.Delivery, error) {
  sent, err := b.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID:      message.ChatId,
    Text:        message.Text,
    ParseMode:   tgmodels.ParseMode(message.ParseMode),
    ReplyMarkup: replyMarkup(message.Keyboard),
    LinkPreviewOptions: &tgmodels.LinkPreviewOptions{
      IsDisabled: lo.ToPtr(true),
    },
  })
  if err != nil {
    return models.Delivery{}, fmt.Errorf("b.deps.Telegram.SendMessage: %w", classify(err))
  }
  return models.Delivery{MessageId: sent.ID}, nil
}

// SendMediaGroup uploads the items as one album. Telegram albums need at
// least two items, so a single item goes out as a photo.
func (b *Transport) SendMediaGroup(ctx context.Context, message models.MediaGroupMessage) (models.Delivery, error) {
  switch len(message.Items) {
  case 0:
    return models.Delivery{}, fmt.Errorf("media group is empty")

  case 1:
    item := message.Items[0]

    sent, err := b.deps.Telegram.SendPhoto(ctx, &telegram.SendPhotoParams{
      ChatID:  message.ChatId,
      Caption: item.Caption,
      Photo: &tgmodels.InputFileUpload{
        Filename: item.Name,
        Data:     bytes.NewReader(item.Data),
      },
    })
    if err != nil {
      return models.Delivery{}, fmt.Errorf("b.deps.Telegram.SendPhoto: %w", classify(err))
    }
    return models.Delivery{MessageId: sent.ID}, nil
  }

  media := make([]tgmodels.InputMedia, 0, len(message.Items))

  for _, item := range message.Items {
    media = append(media, &tgmodels.InputMediaPhoto{
      Media:           "attach://" + item.Name,
      Caption:         item.Caption,
      MediaAttachment: bytes.NewReader(item.Data),
    })
  }

  sent, err := b.deps.Telegram.SendMediaGroup(ctx, &telegram.SendMediaGroupParams{
    ChatID: message.ChatId,
    Media:  media,
  })
  if err != nil {
    return models.Delivery{}, fmt.Errorf("b.deps.Telegram.SendMediaGroup: %w", classify(err))
  }
  if len(sent) == 0 {
    return models.Delivery{}, nil
  }
  return models.Delivery{MessageId: sent[0].ID}, nil
}

// SendPhoto forwards an already uploaded photo by its file id.
func (b *Transport) SendPhoto(ctx context.Context, message models.PhotoMessage) (models.Delivery, error) {
  sent, err := b.deps.Telegram.SendPhoto(ctx, &telegram.SendPhotoParams{
    ChatID:  message.ChatId,
    Caption: message.Caption,
    Photo: &tgmodels.InputFileString{
      Data: message.FileId,
    },
  })
  if err != nil {
    return models.Delivery{}, fmt.Errorf("b.deps.Telegram.SendPhoto: %w", classify(err))
  }
  return models.Delivery{MessageId: sent.ID}, nil
}

// classify marks rate limits as transient. Network failures and timeouts are
// recognised by retry itself.
func classify(err error) error {
  var tooMany *telegram.TooManyRequestsError

  if errors.As(err, &tooMany) {
    return errors.Join(retry.ErrTransient, err)
  }
  return err
}

func replyMarkup(keyboard *models.Keyboard) tgmodels.ReplyMarkup {
  if keyboard == nil {
    return nil
  }
  switch keyboard.Kind {

  case models.KeyboardRemove:
    return &tgmodels.ReplyKeyboardRemove{RemoveKeyboard: true}

  case models.KeyboardInline:
    rows := make([][]tgmodels.InlineKeyboardButton, 0, len(keyboard.Rows))

    for _, row := range keyboard.Rows {
      rows = append(rows, lo.Map(row, func(button models.Button, _ int) tgmodels.InlineKeyboardButton {
        inline := tgmodels.InlineKeyboardButton{
          Text:         button.Text,
          CallbackData: button.Callback,
        }
        if button.WebAppURL != "" {
          inline.WebApp = &tgmodels.WebAppInfo{URL: button.WebAppURL}
        }
        return inline
      }))
    }
    return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
  }

  rows := make([][]tgmodels.KeyboardButton, 0, len(keyboard.Rows))

  for _, row := range keyboard.Rows {
    rows = append(rows, lo.Map(row, func(button models.Button, _ int) tgmodels.KeyboardButton {
      reply := tgmodels.KeyboardButton{
        Text:           button.Text,
        RequestContact: button.RequestContact,
      }
      if button.WebAppURL != "" {
        reply.WebApp = &tgmodels.WebAppInfo{URL: button.WebAppURL}
      }
      return reply
    }))
  }
  return &tgmodels.ReplyKeyboardMarkup{
    Keyboard:       rows,
    ResizeKeyboard: true,
  }
}
