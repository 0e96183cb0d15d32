package telegram

import (
  "strings"

  tgmodels "github.com/go-telegram/bot/models"
  "github.com/samber/lo"
  "github.com/ushakovn/sumki/internal/models"
)

// eventFromUpdate converts an update sent by a user. Updates the dialogue
// can not react to are skipped.
func eventFromUpdate(update *tgmodels.Update) (models.Event, bool) {
  if update == nil {
    return models.Event{}, false
  }
  if query := update.CallbackQuery; query != nil {
    return eventFromCallback(query)
  }
  msg := update.Message
  if msg == nil || msg.From == nil {
    return models.Event{}, false
  }

  event := models.Event{
    UserId: msg.From.ID,
    ChatId: msg.Chat.ID,
    Handle: msg.From.Username,
  }

  switch {
  case msg.WebAppData != nil:
    event.Kind = models.EventWebApp
    event.WebApp = msg.WebAppData.Data

  case msg.Contact != nil:
    event.Kind = models.EventContact
    event.Contact = &models.ContactPayload{
      PhoneNumber: msg.Contact.PhoneNumber,
      FirstName:   msg.Contact.FirstName,
      LastName:    msg.Contact.LastName,
    }

  case len(msg.Photo) > 0:
    photo := largestPhoto(msg.Photo)

    event.Kind = models.EventPhoto
    event.Photo = &models.PhotoPayload{
      FileId:   photo.FileID,
      FileSize: int64(photo.FileSize),
    }

  case strings.HasPrefix(msg.Text, "/"):
    command, args := parseCommand(msg.Text)
    if command == "" {
      return models.Event{}, false
    }
    event.Kind = models.EventCommand
    event.Command = command
    event.Args = args

  case msg.Text != "":
    event.Kind = models.EventText
    event.Text = msg.Text

  default:
    return models.Event{}, false
  }

  return event, true
}

func eventFromCallback(query *tgmodels.CallbackQuery) (models.Event, bool) {
  if query.Data == "" || query.From.ID == 0 {
    return models.Event{}, false
  }
  chatId, ok := findChatIdInMaybeInaccessible(query.Message)
  if !ok {
    chatId = query.From.ID
  }
  return models.Event{
    Kind:     models.EventCallback,
    UserId:   query.From.ID,
    ChatId:   chatId,
    Handle:   query.From.Username,
    Callback: query.Data,
  }, true
}

// parseCommand splits "/status@bot 5 done" into "status" and its arguments.
func parseCommand(text string) (string, []string) {
  fields := strings.Fields(strings.TrimPrefix(text, "/"))
  if len(fields) == 0 {
    return "", nil
  }
  command, _, _ := strings.Cut(fields[0], "@")

  return strings.ToLower(command), fields[1:]
}

func largestPhoto(sizes []tgmodels.PhotoSize) tgmodels.PhotoSize {
  return lo.MaxBy(sizes, func(a, b tgmodels.PhotoSize) bool {
    return a.Width*a.Height > b.Width*b.Height
  })
}

func findChatIdInMaybeInaccessible(msg tgmodels.MaybeInaccessibleMessage) (int64, bool) {
  if msg.Message != nil && msg.Message.Chat.ID != 0 {
    return msg.Message.Chat.ID, true
  }
  if msg.InaccessibleMessage != nil && msg.InaccessibleMessage.Chat.ID != 0 {
    return msg.InaccessibleMessage.Chat.ID, true
  }
  return 0, false
}
