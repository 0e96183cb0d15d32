package testutils

import (
  "context"
  "sync"

  "github.com/ushakovn/sumki/internal/models"
)

// Sink records outbound messages. Fail* hooks, when set, decide per call
// whether the send fails; failed calls are counted but not recorded.
type Sink struct {
  mu sync.Mutex

  Texts  []models.TextMessage
  Groups []models.MediaGroupMessage
  Photos []models.PhotoMessage

  TextAttempts  int
  GroupAttempts int
  PhotoAttempts int

  FailText  func(message models.TextMessage) error
  FailGroup func(message models.MediaGroupMessage) error
  FailPhoto func(message models.PhotoMessage) error

  lastId int
}

func NewSink() *Sink {
  return &Sink{}
}

func (s *Sink) SendText(_ context.Context, message models.TextMessage) (models.Delivery, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.TextAttempts++

  if s.FailText != nil {
    if err := s.FailText(message); err != nil {
      return models.Delivery{}, err
    }
  }
  s.Texts = append(s.Texts, message)

  return s.delivery(), nil
}

func (s *Sink) SendMediaGroup(_ context.Context, message models.MediaGroupMessage) (models.Delivery, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.GroupAttempts++

  if s.FailGroup != nil {
    if err := s.FailGroup(message); err != nil {
      return models.Delivery{}, err
    }
  }
  s.Groups = append(s.Groups, message)

  return s.delivery(), nil
}

func (s *Sink) SendPhoto(_ context.Context, message models.PhotoMessage) (models.Delivery, error) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.PhotoAttempts++

  if s.FailPhoto != nil {
    if err := s.FailPhoto(message); err != nil {
      return models.Delivery{}, err
    }
  }
  s.Photos = append(s.Photos, message)

  return s.delivery(), nil
}

// TextsTo returns the recorded texts addressed to chatId.
func (s *Sink) TextsTo(chatId models.ChatId) []models.TextMessage {
  s.mu.Lock()
  defer s.mu.Unlock()

  var texts []models.TextMessage
  for _, message := range s.Texts {
    if message.ChatId == chatId {
      texts = append(texts, message)
    }
  }
  return texts
}

func (s *Sink) LastText() models.TextMessage {
  s.mu.Lock()
  defer s.mu.Unlock()

  if len(s.Texts) == 0 {
    return models.TextMessage{}
  }
  return s.Texts[len(s.Texts)-1]
}

func (s *Sink) Reset() {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.Texts = nil
  s.Groups = nil
  s.Photos = nil
  s.TextAttempts = 0
  s.GroupAttempts = 0
  s.PhotoAttempts = 0
}

func (s *Sink) delivery() models.Delivery {
  s.lastId++
  return models.Delivery{MessageId: s.lastId}
}
