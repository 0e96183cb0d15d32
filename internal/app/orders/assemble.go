package orders

import (
  "errors"
  "slices"
  "strings"
  "time"

  "github.com/samber/lo"
  "github.com/ushakovn/sumki/internal/models"
)

var (
  ErrContactRequired = errors.New("contact required")
  ErrUnknownProduct  = errors.New("unknown product")
)

// Assemble builds the order for the collected fields. Id is left for the store.
func Assemble(fields models.OrderFields, customer models.Customer, now time.Time) (*models.Order, error) {
  contact := strings.TrimSpace(fields.Contact)
  if contact == "" {
    return nil, ErrContactRequired
  }
  attributes, err := attributesOf(fields)
  if err != nil {
    return nil, err
  }
  return &models.Order{
    CustomerId:     customer.Id,
    CustomerHandle: customer.Handle,
    CreatedAt:      now,
    ProductType:    fields.Product,
    Attributes:     attributes,
    Contact:        contact,
    Status:         models.OrderStatusNew,
    Notes:          []string{},
  }, nil
}

func attributesOf(fields models.OrderFields) (models.ProductAttributes, error) {
  switch fields.Product {

  case models.ProductTypeBag:
    return models.ProductAttributes{
      Bag: &models.BagAttributes{
        Size:     fields.Size,
        Shape:    fields.Shape,
        Material: fields.Material,
        Color:    fields.Color,
        Options:  uniq(fields.Options),
      },
    }, nil

  case models.ProductTypeCupHolder:
    return models.ProductAttributes{
      CupHolder: &models.CupHolderAttributes{
        Material: fields.Material,
        Color:    fields.Color,
        Options:  uniq(fields.Options),
      },
    }, nil

  case models.ProductTypeCustom:
    return models.ProductAttributes{
      Custom: &models.CustomAttributes{
        Description: fields.CustomDescription,
        PhotoIds:    slices.Clone(fields.CustomPhotoIds),
      },
    }, nil
  }

  return models.ProductAttributes{}, ErrUnknownProduct
}

func uniq(values []string) []string {
  return lo.Uniq(slices.Clone(values))
}
