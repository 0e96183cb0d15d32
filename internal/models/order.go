package models

import (
  "slices"
  "time"
)

type ProductType string

const (
  ProductTypeBag       ProductType = "Bag"
  ProductTypeCupHolder ProductType = "Cup holder"
  ProductTypeCustom    ProductType = "Custom order"
)

const OrderStatusNew = "new"

type OrderId = int64

type Customer struct {
  Id     UserId `bson:"id" json:"id"`
  Handle string `bson:"handle" json:"handle"`
}

type Order struct {
  Id             OrderId           `bson:"id" json:"id"`
  CustomerId     UserId            `bson:"customer_id" json:"customer_id"`
  CustomerHandle string            `bson:"customer_handle" json:"customer_handle"`
  CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
  ProductType    ProductType       `bson:"product_type" json:"product_type"`
  Attributes     ProductAttributes `bson:"attributes" json:"attributes"`
  Contact        string            `bson:"contact" json:"contact"`
  Status         string            `bson:"status" json:"status"`
  Notes          []string          `bson:"notes" json:"notes"`
}

// ProductAttributes is a tagged variant: exactly one of the cases is set,
// matching the order product type.
type ProductAttributes struct {
  Bag       *BagAttributes       `bson:"bag,omitempty" json:"bag,omitempty"`
  CupHolder *CupHolderAttributes `bson:"cup_holder,omitempty" json:"cup_holder,omitempty"`
  Custom    *CustomAttributes    `bson:"custom,omitempty" json:"custom,omitempty"`
}

type BagAttributes struct {
  Size     string   `bson:"size" json:"size"`
  Shape    string   `bson:"shape" json:"shape"`
  Material string   `bson:"material" json:"material"`
  Color    string   `bson:"color" json:"color"`
  Options  []string `bson:"options" json:"options"`
}

type CupHolderAttributes struct {
  Material string   `bson:"material" json:"material"`
  Color    string   `bson:"color" json:"color"`
  Options  []string `bson:"options" json:"options"`
}

type CustomAttributes struct {
  Description string   `bson:"description" json:"description"`
  PhotoIds    []string `bson:"photo_ids" json:"photo_ids"`
}

func (a ProductAttributes) Kind() ProductType {
  switch {
  case a.Bag != nil:
    return ProductTypeBag
  case a.CupHolder != nil:
    return ProductTypeCupHolder
  case a.Custom != nil:
    return ProductTypeCustom
  }
  return ""
}

func (a ProductAttributes) PhotoIds() []string {
  if a.Custom == nil {
    return nil
  }
  return a.Custom.PhotoIds
}

func (o Order) Clone() Order {
  cop := o
  cop.Notes = slices.Clone(o.Notes)

  if a := o.Attributes.Bag; a != nil {
    bag := *a
    bag.Options = slices.Clone(a.Options)
    cop.Attributes.Bag = &bag
  }
  if a := o.Attributes.CupHolder; a != nil {
    cupHolder := *a
    cupHolder.Options = slices.Clone(a.Options)
    cop.Attributes.CupHolder = &cupHolder
  }
  if a := o.Attributes.Custom; a != nil {
    custom := *a
    custom.PhotoIds = slices.Clone(a.PhotoIds)
    cop.Attributes.Custom = &custom
  }
  return cop
}
