package catalog

import (
  _ "embed"
  "fmt"
  "os"
  "strings"

  "github.com/go-playground/validator/v10"
  "github.com/samber/lo"
  "github.com/ushakovn/sumki/internal/models"
  "gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type Catalog struct {
  Buttons   Buttons                        `yaml:"buttons" validate:"required"`
  Products  Choices                        `yaml:"products" validate:"required"`
  Sizes     Choices                        `yaml:"sizes" validate:"required"`
  Shapes    Choices                        `yaml:"shapes" validate:"required"`
  Materials Choices                        `yaml:"materials" validate:"required"`
  Colors    Choices                        `yaml:"colors" validate:"required"`
  Options   map[models.ProductType]Choices `yaml:"options"`
  MiniApp   MiniApp                        `yaml:"mini_app"`
}

type Buttons struct {
  PlaceOrder        string `yaml:"place_order" validate:"required"`
  OrderViaApp       string `yaml:"order_via_app" validate:"required"`
  OpenApp           string `yaml:"open_app" validate:"required"`
  Back              string `yaml:"back" validate:"required"`
  CancelOrder       string `yaml:"cancel_order" validate:"required"`
  FinishSelection   string `yaml:"finish_selection" validate:"required"`
  FinishDescription string `yaml:"finish_description" validate:"required"`
  ShareContact      string `yaml:"share_contact" validate:"required"`
  Confirm           string `yaml:"confirm" validate:"required"`
  Cancel            string `yaml:"cancel" validate:"required"`
}

type Choices struct {
  PerRow int      `yaml:"per_row"`
  Items  []Choice `yaml:"items" validate:"required,min=1,dive"`
}

type Choice struct {
  Label        string             `yaml:"label" validate:"required"`
  Type         models.ProductType `yaml:"type"`
  Illustration string             `yaml:"illustration"`
  Caption      string             `yaml:"caption"`
}

// MiniApp holds the web app address and the dictionaries translating its
// payload keys into catalog labels.
type MiniApp struct {
  URL       string                        `yaml:"url"`
  Products  map[string]models.ProductType `yaml:"products"`
  Sizes     map[string]string             `yaml:"sizes"`
  Shapes    map[string]string             `yaml:"shapes"`
  Materials map[string]string             `yaml:"materials"`
  Colors    map[string]string             `yaml:"colors"`
  Options   map[string]string             `yaml:"options"`
}

func Default() (*Catalog, error) {
  return Parse(defaultCatalog)
}

func Load(path string) (*Catalog, error) {
  if path == "" {
    return Default()
  }
  data, err := os.ReadFile(path)
  if err != nil {
    return nil, fmt.Errorf("os.ReadFile: %w", err)
  }
  return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
  c := new(Catalog)

  if err := yaml.Unmarshal(data, c); err != nil {
    return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
  }
  if err := c.Validate(); err != nil {
    return nil, fmt.Errorf("c.Validate: %w", err)
  }
  return c, nil
}

func (c *Catalog) Validate() error {
  if err := validator.New().Struct(c); err != nil {
    return err
  }
  for _, item := range c.Products.Items {
    switch item.Type {
    case models.ProductTypeBag, models.ProductTypeCupHolder, models.ProductTypeCustom:
    default:
      return fmt.Errorf("product %q: unknown type %q", item.Label, item.Type)
    }
  }
  return nil
}

func (c *Catalog) Product(label string) (models.ProductType, bool) {
  item, ok := c.Products.Find(label)
  if !ok {
    return "", false
  }
  return item.Type, true
}

// OptionsFor returns the extra options offered for productType; empty when none.
func (c *Catalog) OptionsFor(productType models.ProductType) Choices {
  return c.Options[productType]
}

// AppURL appends a cache busting version parameter to the mini app address.
func (c *Catalog) AppURL(version int64) string {
  if c.MiniApp.URL == "" {
    return ""
  }
  sep := "?"
  if strings.Contains(c.MiniApp.URL, "?") {
    sep = "&"
  }
  return fmt.Sprintf("%s%sv=%d", c.MiniApp.URL, sep, version)
}

func (c Choices) Find(label string) (Choice, bool) {
  return lo.Find(c.Items, func(item Choice) bool {
    return item.Label == label
  })
}

func (c Choices) Has(label string) bool {
  _, ok := c.Find(label)
  return ok
}

func (c Choices) Labels() []string {
  return lo.Map(c.Items, func(item Choice, _ int) string {
    return item.Label
  })
}

// Rows lays the labels out by PerRow buttons per row.
func (c Choices) Rows() [][]string {
  if len(c.Items) == 0 {
    return nil
  }
  perRow := c.PerRow
  if perRow <= 0 {
    perRow = 1
  }
  return lo.Chunk(c.Labels(), perRow)
}

func (c Choices) Illustrations() []models.Illustration {
  items := lo.Filter(c.Items, func(item Choice, _ int) bool {
    return item.Illustration != ""
  })
  return lo.Map(items, func(item Choice, _ int) models.Illustration {
    return models.Illustration{
      Caption: item.Caption,
      Source:  item.Illustration,
    }
  })
}

// Translate maps a mini app key into a label. Unknown keys pass through
// unchanged so free-form values survive.
func Translate(dict map[string]string, key string) string {
  if value, ok := dict[strings.ToLower(key)]; ok {
    return value
  }
  if value, ok := dict[key]; ok {
    return value
  }
  return key
}
