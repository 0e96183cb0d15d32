package dialogue

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/sumki/internal/app/media"
  "github.com/ushakovn/sumki/internal/app/orders"
  "github.com/ushakovn/sumki/internal/catalog"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/retry"
)

// render sends the prompt of stage. withMedia adds the illustrations of
// stages that have them.
func (s *step) render(ctx context.Context, stage models.Stage, withMedia bool) error {
  c := s.catalog()
  b := s.buttons()

  switch stage {

  case models.StageStart:
    return s.reply(ctx, textWelcome, s.startKeyboard())

  case models.StageChooseProduct:
    return s.reply(ctx, textChooseProduct, choiceKeyboard(c.Products, b))

  case models.StageCustomOrder:
    return s.reply(ctx, textCustomOrder, models.NewReplyKeyboard(
      models.Row(b.FinishDescription),
      models.Row(b.Back, b.CancelOrder),
    ))

  case models.StageChooseSize:
    return s.reply(ctx, textChooseSize, choiceKeyboard(c.Sizes, b))

  case models.StageChooseShape:
    return s.renderIllustrated(ctx, c.Shapes, withMedia, illustratedTexts{
      prompt: textChooseShape,
      shown:  textShapesShown,
      failed: textShapesFailed,
    })

  case models.StageChooseMaterial:
    return s.renderIllustrated(ctx, c.Materials, withMedia, illustratedTexts{
      prompt: textChooseMaterial,
      shown:  textMaterialsShown,
      failed: textMaterialsFailed,
    })

  case models.StageChooseColor:
    return s.reply(ctx, textChooseColor, choiceKeyboard(c.Colors, b))

  case models.StageChooseOptions:
    options := c.OptionsFor(s.sess.Fields.Product)

    rows := buttonRows(options.Rows())
    rows = append(rows,
      models.Row(b.Back, b.FinishSelection),
      models.Row(b.CancelOrder),
    )
    return s.reply(ctx, textChooseOptions, models.NewReplyKeyboard(rows...))

  case models.StagePreview:
    return s.reply(ctx, orders.Preview(s.sess.Fields), models.NewInlineKeyboard(
      []models.Button{
        {Text: b.Confirm, Callback: callbackConfirm},
        {Text: b.Cancel, Callback: callbackCancel},
      },
    ))

  case models.StageContact:
    return s.reply(ctx, textRequestContact, models.NewReplyKeyboard(
      []models.Button{{Text: b.ShareContact, RequestContact: true}},
      models.Row(b.Back, b.CancelOrder),
    ))
  }

  return fmt.Errorf("stage %q has no prompt", stage)
}

type illustratedTexts struct {
  prompt string
  shown  string
  failed string
}

// renderIllustrated sends the illustrations as one media group before the
// prompt. Any failure degrades the prompt to text with an explanation.
func (s *step) renderIllustrated(ctx context.Context, choices catalog.Choices, withMedia bool, texts illustratedTexts) error {
  keyboard := choiceKeyboard(choices, s.buttons())

  if !withMedia {
    return s.reply(ctx, texts.prompt, keyboard)
  }
  suffix := texts.failed

  if s.sendIllustrations(ctx, choices.Illustrations()) {
    suffix = texts.shown
  }
  return s.reply(ctx, texts.prompt+"\n\n"+suffix, keyboard)
}

func (s *step) sendIllustrations(ctx context.Context, illustrations []models.Illustration) bool {
  logger := log.
    WithField("user_id", s.event.UserId).
    WithField("stage", s.sess.Stage())

  if len(illustrations) == 0 {
    return false
  }
  results := s.engine.deps.Media.Load(ctx, illustrations)

  items := media.Compose(results)
  if len(items) == 0 {
    logger.Warn("no illustration could be loaded")
    return false
  }
  if len(items) < len(results) {
    logger.
      WithField("loaded", len(items)).
      WithField("total", len(results)).
      Warn("some illustrations failed to load")
  }

  err := retry.Do(ctx, s.engine.config.Retry, func(ctx context.Context) error {
    _, err := s.engine.deps.Sink.SendMediaGroup(ctx, models.MediaGroupMessage{
      ChatId: s.event.ChatId,
      Items:  items,
    })
    return err
  })
  if err != nil {
    logger.Warnf("s.engine.deps.Sink.SendMediaGroup: %v", err)
    return false
  }
  return true
}

func (s *step) startKeyboard() *models.Keyboard {
  b := s.buttons()

  rows := [][]models.Button{models.Row(b.PlaceOrder)}
  if s.catalog().MiniApp.URL != "" {
    rows = append(rows, models.Row(b.OrderViaApp))
  }
  return models.NewReplyKeyboard(rows...)
}

func choiceKeyboard(choices catalog.Choices, b catalog.Buttons) *models.Keyboard {
  rows := buttonRows(choices.Rows())
  rows = append(rows, models.Row(b.Back, b.CancelOrder))

  return models.NewReplyKeyboard(rows...)
}

func buttonRows(labels [][]string) [][]models.Button {
  rows := make([][]models.Button, 0, len(labels)+2)

  for _, row := range labels {
    rows = append(rows, models.Row(row...))
  }
  return rows
}
