package dialogue

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/stringer"
)

// WebAppPayload is the order the mini app posts back to the bot.
type WebAppPayload struct {
  Product           string   `json:"product"`
  Size              string   `json:"size"`
  Shape             string   `json:"shape"`
  Material          string   `json:"material"`
  Color             string   `json:"color"`
  Options           []string `json:"options"`
  CustomDescription string   `json:"customDescription"`
}

// webApp replaces the dialogue with the fields chosen in the mini app and
// continues at the preview.
func (s *step) webApp(ctx context.Context) (Outcome, error) {
  fields, err := s.webAppFields()
  if err != nil {
    log.
      WithField("user_id", s.event.UserId).
      Warnf("s.webAppFields: %v", err)

    return s.stay(ctx, textWebAppInvalid, nil)
  }
  if fields.CustomDescription != "" && !s.engine.deps.Filter.IsClean(fields.CustomDescription) {
    return s.stay(ctx, textDescriptionProfane, nil)
  }

  s.sess.Reset()
  s.sess.Enter(models.StageStart)
  s.sess.Fields = fields

  return s.advance(ctx, models.StagePreview)
}

func (s *step) webAppFields() (models.OrderFields, error) {
  payload := new(WebAppPayload)

  if err := json.Unmarshal([]byte(s.event.WebApp), payload); err != nil {
    return models.OrderFields{}, fmt.Errorf("json.Unmarshal: %w", err)
  }
  dict := s.catalog().MiniApp

  productType, ok := dict.Products[payload.Product]
  if !ok {
    return models.OrderFields{}, fmt.Errorf("unknown product %q", payload.Product)
  }
  fields := models.OrderFields{Product: productType}

  switch productType {

  case models.ProductTypeCustom:
    fields.CustomDescription = stringer.SanitizeString(payload.CustomDescription)
    if fields.CustomDescription == "" {
      return models.OrderFields{}, fmt.Errorf("custom order without description")
    }
    return fields, nil

  case models.ProductTypeBag:
    fields.Size = translate(dict.Sizes, payload.Size)
    fields.Shape = translate(dict.Shapes, payload.Shape)
  }

  fields.Material = translate(dict.Materials, payload.Material)
  fields.Color = translate(dict.Colors, payload.Color)

  options := lo.Compact(lo.Map(payload.Options, func(option string, _ int) string {
    return translate(dict.Options, option)
  }))
  for _, option := range options {
    fields.AddOption(option)
  }
  return fields, nil
}

func translate(dict map[string]string, key string) string {
  return stringer.SanitizeString(catalog.Translate(dict, key))
}
