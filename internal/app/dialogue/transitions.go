package dialogue

import (
  "context"
  "fmt"
  "strings"

  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/stringer"
)

func (s *step) advance(ctx context.Context, stage models.Stage) (Outcome, error) {
  if err := s.enter(ctx, stage); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeAdvanced, nil
}

func (s *step) stay(ctx context.Context, text string, keyboard *models.Keyboard) (Outcome, error) {
  if err := s.reply(ctx, text, keyboard); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeStayed, nil
}

func (s *step) reject(ctx context.Context, notice string) (Outcome, error) {
  if err := s.reprompt(ctx, notice); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeRejected, nil
}

func (s *step) onStart(ctx context.Context) (Outcome, error) {
  b := s.buttons()

  switch {
  case s.event.IsText(b.PlaceOrder):
    return s.advance(ctx, models.StageChooseProduct)

  case s.event.IsText(b.OrderViaApp):
    return s.openApp(ctx)
  }

  if err := s.render(ctx, models.StageStart, false); err != nil {
    return OutcomeFailed, err
  }
  return OutcomeStayed, nil
}

func (s *step) openApp(ctx context.Context) (Outcome, error) {
  url := s.catalog().AppURL(s.engine.now().Unix())
  if url == "" {
    return s.reject(ctx, textAppUnavailable)
  }
  keyboard := models.NewInlineKeyboard([]models.Button{
    {Text: s.buttons().OpenApp, WebAppURL: url},
  })
  return s.stay(ctx, textOpenApp, keyboard)
}

func (s *step) onChooseProduct(ctx context.Context) (Outcome, error) {
  label, ok := s.choice(s.catalog().Products)
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  productType, _ := s.catalog().Product(label)

  s.sess.Fields = models.OrderFields{Product: productType}

  switch productType {
  case models.ProductTypeBag:
    return s.advance(ctx, models.StageChooseSize)
  case models.ProductTypeCupHolder:
    return s.advance(ctx, models.StageChooseMaterial)
  case models.ProductTypeCustom:
    return s.advance(ctx, models.StageCustomOrder)
  }

  return OutcomeFailed, fmt.Errorf("product %q has unknown type %q", label, productType)
}

func (s *step) onChooseSize(ctx context.Context) (Outcome, error) {
  label, ok := s.choice(s.catalog().Sizes)
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  s.sess.Fields.Size = label

  return s.advance(ctx, models.StageChooseShape)
}

func (s *step) onChooseShape(ctx context.Context) (Outcome, error) {
  label, ok := s.choice(s.catalog().Shapes)
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  s.sess.Fields.Shape = label

  return s.advance(ctx, models.StageChooseMaterial)
}

func (s *step) onChooseMaterial(ctx context.Context) (Outcome, error) {
  label, ok := s.choice(s.catalog().Materials)
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  s.sess.Fields.Material = label

  return s.advance(ctx, models.StageChooseColor)
}

func (s *step) onChooseColor(ctx context.Context) (Outcome, error) {
  label, ok := s.choice(s.catalog().Colors)
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  s.sess.Fields.Color = label

  return s.advance(ctx, models.StageChooseOptions)
}

func (s *step) onChooseOptions(ctx context.Context) (Outcome, error) {
  if s.event.IsText(s.buttons().FinishSelection) {
    return s.advance(ctx, models.StagePreview)
  }
  label, ok := s.choice(s.catalog().OptionsFor(s.sess.Fields.Product))
  if !ok {
    return s.reject(ctx, textChooseFromList)
  }
  format := textOptionAdded
  if !s.sess.Fields.AddOption(label) {
    format = textOptionRepeated
  }
  selected := strings.Join(s.sess.Fields.Options, ", ")

  return s.stay(ctx, fmt.Sprintf(format, label, selected, s.buttons().FinishSelection), nil)
}

func (s *step) onCustomOrder(ctx context.Context) (Outcome, error) {
  switch s.event.Kind {

  case models.EventPhoto:
    return s.addCustomPhoto(ctx)

  case models.EventText:
    if s.event.IsText(s.buttons().FinishDescription) {
      return s.finishDescription(ctx)
    }
    return s.setCustomDescription(ctx)
  }

  return OutcomeIgnored, nil
}

func (s *step) setCustomDescription(ctx context.Context) (Outcome, error) {
  description := stringer.SanitizeString(s.event.Text)

  if description == "" {
    return s.reject(ctx, textDescriptionEmpty)
  }
  if !s.engine.deps.Filter.IsClean(description) {
    return s.reject(ctx, textDescriptionProfane)
  }
  s.sess.Fields.CustomDescription = description

  return s.stay(ctx, textDescriptionSaved, s.customOrderKeyboard())
}

func (s *step) addCustomPhoto(ctx context.Context) (Outcome, error) {
  photo := s.event.Photo
  if photo == nil || photo.FileId == "" {
    return OutcomeIgnored, nil
  }
  config := s.engine.config

  if photo.FileSize > config.MaxPhotoSize {
    return s.reject(ctx, fmt.Sprintf(textPhotoTooLarge, formatBytes(config.MaxPhotoSize)))
  }
  if len(s.sess.Fields.CustomPhotoIds) >= config.MaxPhotos {
    return s.reject(ctx, fmt.Sprintf(textPhotoTooMany, config.MaxPhotos))
  }
  s.sess.Fields.CustomPhotoIds = append(s.sess.Fields.CustomPhotoIds, photo.FileId)

  text := fmt.Sprintf(textPhotoSaved, len(s.sess.Fields.CustomPhotoIds), config.MaxPhotos)

  return s.stay(ctx, text, s.customOrderKeyboard())
}

func (s *step) finishDescription(ctx context.Context) (Outcome, error) {
  fields := s.sess.Fields

  if fields.CustomDescription == "" && len(fields.CustomPhotoIds) == 0 {
    return s.reject(ctx, textDescriptionRequired)
  }
  return s.advance(ctx, models.StageContact)
}

func (s *step) onPreview(ctx context.Context) (Outcome, error) {
  b := s.buttons()

  switch {
  case s.event.Callback == callbackConfirm, s.event.IsText(b.Confirm):
    return s.advance(ctx, models.StageContact)

  case s.event.Callback == callbackCancel, s.event.IsText(b.Cancel):
    return s.cancel(ctx)

  case s.event.Kind == models.EventText:
    return s.reject(ctx, textConfirmOrCancel)
  }

  return OutcomeIgnored, nil
}

func (s *step) onContact(ctx context.Context) (Outcome, error) {
  contact := s.event.Contact
  if s.event.Kind != models.EventContact || contact == nil {
    return OutcomeIgnored, nil
  }
  phone := strings.TrimSpace(contact.PhoneNumber)
  if phone == "" {
    return OutcomeIgnored, nil
  }
  s.sess.Fields.Contact = phone

  return s.submit(ctx)
}

// choice returns the event text when it is one of the offered labels.
func (s *step) choice(choices catalog.Choices) (string, bool) {
  if s.event.Kind != models.EventText {
    return "", false
  }
  if !choices.Has(s.event.Text) {
    return "", false
  }
  return s.event.Text, true
}

func (s *step) customOrderKeyboard() *models.Keyboard {
  b := s.buttons()

  return models.NewReplyKeyboard(
    models.Row(b.FinishDescription, b.Back),
    models.Row(b.CancelOrder),
  )
}

func formatBytes(size int64) string {
  const mb = 1 << 20

  if size >= mb && size%mb == 0 {
    return fmt.Sprintf("%d МБ", size/mb)
  }
  return fmt.Sprintf("%d байт", size)
}
