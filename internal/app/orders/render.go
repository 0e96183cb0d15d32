package orders

import (
  "fmt"
  "strings"

  "github.com/samber/lo"
  "github.com/ushakovn/sumki/internal/models"
  "github.com/ushakovn/sumki/pkg/stringer"
)

const (
  NotSpecified = "не указано"
  Separator    = "-------------------"

  dateLayout = "02.01.2006 15:04"
)

var titles = map[models.ProductType]string{
  models.ProductTypeBag:       "Сумка",
  models.ProductTypeCupHolder: "Подстаканник",
  models.ProductTypeCustom:    "Нестандартный заказ",
}

func Title(productType models.ProductType) string {
  if title, ok := titles[productType]; ok {
    return title
  }
  return or(string(productType))
}

// Handle renders a customer for operators: @username when known, id otherwise.
func Handle(customer models.Customer) string {
  if customer.Handle != "" {
    return "@" + strings.TrimPrefix(customer.Handle, "@")
  }
  return fmt.Sprintf("id %d", customer.Id)
}

// Summary is the operator notification text for a stored order.
func Summary(order models.Order) string {
  var b strings.Builder

  customer := Handle(models.Customer{Id: order.CustomerId, Handle: order.CustomerHandle})

  fmt.Fprintf(&b, "Заказ #%d\n", order.Id)

  if order.ProductType == models.ProductTypeCustom {
    fmt.Fprintf(&b, "Нестандартный заказ от %s:\n", customer)
  } else {
    fmt.Fprintf(&b, "Заказ от %s:\n", customer)
    fmt.Fprintf(&b, "Продукт: %s\n", Title(order.ProductType))
  }
  writeAttributes(&b, order.Attributes)

  fmt.Fprintf(&b, "Контакт: %s", or(order.Contact))

  return b.String()
}

// Preview is shown to the customer before confirmation.
func Preview(fields models.OrderFields) string {
  var b strings.Builder

  b.WriteString("Проверьте ваш заказ:\n\n")

  if fields.Product == models.ProductTypeCustom {
    b.WriteString("Тип заказа: Нестандартный\n")
  } else {
    fmt.Fprintf(&b, "Продукт: %s\n", Title(fields.Product))
  }
  attributes, err := attributesOf(fields)
  if err == nil {
    writeAttributes(&b, attributes)
  }
  return strings.TrimRight(b.String(), "\n")
}

// Render is the admin listing entry for an order.
func Render(order models.Order) string {
  var b strings.Builder

  fmt.Fprintf(&b, "Заказ #%d\n", order.Id)
  fmt.Fprintf(&b, "Дата: %s\n", order.CreatedAt.Format(dateLayout))
  fmt.Fprintf(&b, "Клиент: %s\n", Handle(models.Customer{Id: order.CustomerId, Handle: order.CustomerHandle}))
  fmt.Fprintf(&b, "Статус: %s\n", or(order.Status))
  fmt.Fprintf(&b, "Тип: %s\n", Title(order.ProductType))

  writeAttributes(&b, order.Attributes)

  fmt.Fprintf(&b, "Контакт: %s\n", or(order.Contact))

  if len(order.Notes) > 0 {
    fmt.Fprintf(&b, "Заметки: %s\n", strings.Join(order.Notes, "; "))
  }
  b.WriteString(Separator + "\n")

  return b.String()
}

// RenderAll joins listing entries under a header.
func RenderAll(orders []models.Order) string {
  return "Список заказов:\n\n" + strings.Join(lo.Map(orders, func(order models.Order, _ int) string {
    return Render(order)
  }), "")
}

func writeAttributes(b *strings.Builder, attributes models.ProductAttributes) {
  switch {

  case attributes.Bag != nil:
    a := attributes.Bag
    fmt.Fprintf(b, "Размер: %s\n", or(a.Size))
    fmt.Fprintf(b, "Форма: %s\n", or(a.Shape))
    fmt.Fprintf(b, "Материал бусин: %s\n", or(a.Material))
    fmt.Fprintf(b, "Цвет: %s\n", or(a.Color))
    fmt.Fprintf(b, "Дополнительные опции: %s\n", list(a.Options))

  case attributes.CupHolder != nil:
    a := attributes.CupHolder
    fmt.Fprintf(b, "Материал бусин: %s\n", or(a.Material))
    fmt.Fprintf(b, "Цвет: %s\n", or(a.Color))
    fmt.Fprintf(b, "Дополнительные опции: %s\n", list(a.Options))

  case attributes.Custom != nil:
    a := attributes.Custom
    fmt.Fprintf(b, "Описание: %s\n", or(a.Description))
    photos := NotSpecified
    if len(a.PhotoIds) > 0 {
      photos = fmt.Sprintf("прикреплено %d", len(a.PhotoIds))
    }
    fmt.Fprintf(b, "Фотографии: %s\n", photos)
  }
}

func or(value string) string {
  return stringer.Or(value, NotSpecified)
}

func list(values []string) string {
  return or(strings.Join(values, ", "))
}
