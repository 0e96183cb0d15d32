package orders

import (
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/ushakovn/sumki/internal/models"
)

func TestSummary_Bag(t *testing.T) {
  order, err := Assemble(models.OrderFields{
    Product: models.ProductTypeBag,
    Size:    "M",
    Color:   "Белый",
    Contact: "+1000",
  }, customer, now)
  require.NoError(t, err)
  order.Id = 7

  expected := strings.Join([]string{
    "Заказ #7",
    "Заказ от @buyer:",
    "Продукт: Сумка",
    "Размер: M",
    "Форма: не указано",
    "Материал бусин: не указано",
    "Цвет: Белый",
    "Дополнительные опции: не указано",
    "Контакт: +1000",
  }, "\n")

  assert.Equal(t, expected, Summary(*order))
  assert.Equal(t, expected, Summary(*order))
}

func TestSummary_CustomWithoutHandle(t *testing.T) {
  order, err := Assemble(models.OrderFields{
    Product:        models.ProductTypeCustom,
    CustomPhotoIds: []string{"p1"},
    Contact:        "+1000",
  }, models.Customer{Id: 5}, now)
  require.NoError(t, err)

  summary := Summary(*order)
  assert.Contains(t, summary, "Нестандартный заказ от id 5:")
  assert.Contains(t, summary, "Описание: не указано")
  assert.Contains(t, summary, "Фотографии: прикреплено 1")
}

func TestPreview(t *testing.T) {
  preview := Preview(models.OrderFields{
    Product:  models.ProductTypeCupHolder,
    Material: "Акрил",
    Options:  []string{"Ручка-цепочка", "Короткая ручка"},
  })

  assert.Equal(t, strings.Join([]string{
    "Проверьте ваш заказ:",
    "",
    "Продукт: Подстаканник",
    "Материал бусин: Акрил",
    "Цвет: не указано",
    "Дополнительные опции: Ручка-цепочка, Короткая ручка",
  }, "\n"), preview)
}

func TestRender(t *testing.T) {
  order, err := Assemble(models.OrderFields{
    Product:           models.ProductTypeCustom,
    CustomDescription: "Кот",
    Contact:           "+1000",
  }, customer, now)
  require.NoError(t, err)
  order.Id = 3
  order.Notes = []string{"позвонить", "оплачено"}

  rendered := Render(*order)
  assert.True(t, strings.HasPrefix(rendered, "Заказ #3\nДата: 01.04.2025 12:30\nКлиент: @buyer\nСтатус: new\nТип: Нестандартный заказ\n"))
  assert.Contains(t, rendered, "Заметки: позвонить; оплачено\n")
  assert.True(t, strings.HasSuffix(rendered, Separator+"\n"))
}
