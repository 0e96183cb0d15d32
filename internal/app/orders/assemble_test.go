package orders

import (
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/ushakovn/sumki/internal/models"
)

var (
  customer = models.Customer{Id: 42, Handle: "buyer"}
  now      = time.Date(2025, 4, 1, 12, 30, 0, 0, time.UTC)
)

func TestAssemble_Bag(t *testing.T) {
  fields := models.OrderFields{
    Product:  models.ProductTypeBag,
    Size:     "M",
    Shape:    "Round",
    Material: "Acrylic",
    Color:    "White",
    Options:  []string{"Clasp"},
    Contact:  "+1000",
  }

  order, err := Assemble(fields, customer, now)
  require.NoError(t, err)

  assert.Equal(t, models.ProductTypeBag, order.ProductType)
  assert.Equal(t, models.ProductTypeBag, order.Attributes.Kind())
  require.NotNil(t, order.Attributes.Bag)
  assert.Nil(t, order.Attributes.CupHolder)
  assert.Nil(t, order.Attributes.Custom)

  bag := order.Attributes.Bag
  assert.Equal(t, "M", bag.Size)
  assert.Equal(t, "Round", bag.Shape)
  assert.Equal(t, "Acrylic", bag.Material)
  assert.Equal(t, "White", bag.Color)
  assert.Equal(t, []string{"Clasp"}, bag.Options)

  assert.Equal(t, "+1000", order.Contact)
  assert.Equal(t, models.OrderStatusNew, order.Status)
  assert.Equal(t, int64(42), order.CustomerId)
  assert.Equal(t, "buyer", order.CustomerHandle)
  assert.Equal(t, now, order.CreatedAt)
  assert.Empty(t, order.Notes)
}

func TestAssemble_DeduplicatesOptions(t *testing.T) {
  fields := models.OrderFields{
    Product: models.ProductTypeCupHolder,
    Options: []string{"Chain", "Chain", "Short handle"},
    Contact: "+1000",
  }

  order, err := Assemble(fields, customer, now)
  require.NoError(t, err)
  require.NotNil(t, order.Attributes.CupHolder)
  assert.Equal(t, []string{"Chain", "Short handle"}, order.Attributes.CupHolder.Options)
  assert.Len(t, fields.Options, 3)
}

func TestAssemble_Custom(t *testing.T) {
  fields := models.OrderFields{
    Product:           models.ProductTypeCustom,
    CustomDescription: "Сумка-кот",
    CustomPhotoIds:    []string{"p1", "p2"},
    Contact:           "+1000",
  }

  order, err := Assemble(fields, customer, now)
  require.NoError(t, err)
  require.NotNil(t, order.Attributes.Custom)
  assert.Equal(t, "Сумка-кот", order.Attributes.Custom.Description)
  assert.Equal(t, []string{"p1", "p2"}, order.Attributes.PhotoIds())
}

func TestAssemble_Errors(t *testing.T) {
  order, err := Assemble(models.OrderFields{Product: models.ProductTypeBag}, customer, now)
  assert.ErrorIs(t, err, ErrContactRequired)
  assert.Nil(t, order)

  order, err = Assemble(models.OrderFields{Product: models.ProductTypeBag, Contact: "   "}, customer, now)
  assert.ErrorIs(t, err, ErrContactRequired)
  assert.Nil(t, order)

  order, err = Assemble(models.OrderFields{Product: "Backpack", Contact: "+1000"}, customer, now)
  assert.ErrorIs(t, err, ErrUnknownProduct)
  assert.Nil(t, order)
}
