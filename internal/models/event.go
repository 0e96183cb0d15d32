package models

type EventKind string

const (
  EventText     EventKind = "text"
  EventPhoto    EventKind = "photo"
  EventContact  EventKind = "contact"
  EventCallback EventKind = "callback"
  EventCommand  EventKind = "command"
  EventWebApp   EventKind = "web_app"
)

// Event is an inbound message addressed to the bot by a single user.
type Event struct {
  Kind   EventKind
  UserId UserId
  ChatId ChatId
  Handle string

  Text     string
  Command  string
  Args     []string
  Photo    *PhotoPayload
  Contact  *ContactPayload
  Callback string
  WebApp   string
}

type PhotoPayload struct {
  FileId   string
  FileSize int64
}

type ContactPayload struct {
  PhoneNumber string
  FirstName   string
  LastName    string
}

func (e Event) IsText(text string) bool {
  return e.Kind == EventText && e.Text == text
}

func (e Event) IsCommand(command string) bool {
  return e.Kind == EventCommand && e.Command == command
}

func (e Event) Customer() Customer {
  return Customer{
    Id:     e.UserId,
    Handle: e.Handle,
  }
}
