package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Family tags a product configuration variant. Each family has its own required
// fields, validated at load time rather than branched on at use time.
type Family string

const (
	FamilyFrame   Family = "frame"
	FamilyApparel Family = "apparel"
)

type SizeOption struct {
	ID             string `yaml:"id"`
	Label          string `yaml:"label"`
	SurchargeCents int32  `yaml:"surcharge_cents"`
}

type Product struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	Family         Family       `yaml:"family"`
	BasePriceCents int32        `yaml:"base_price_cents"`
	ShippingCents  int32        `yaml:"shipping_cents"`
	Sizes          []SizeOption `yaml:"sizes"`

	// frame family only
	FrameColors []string `yaml:"frame_colors,omitempty"`

	// apparel family only
	Fits []string `yaml:"fits,omitempty"`
}

type Catalog struct {
	products map[string]Product
	order    []string
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	c := &Catalog{products: make(map[string]Product, len(file.Products))}
	for _, p := range file.Products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c, nil
}

func validateProduct(p Product) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.BasePriceCents <= 0 {
		return fmt.Errorf("base_price_cents must be positive")
	}
	if p.ShippingCents < 0 {
		return fmt.Errorf("shipping_cents cannot be negative")
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	for _, s := range p.Sizes {
		if s.ID == "" {
			return fmt.Errorf("size with empty id")
		}
		if s.SurchargeCents < 0 {
			return fmt.Errorf("size %q: surcharge_cents cannot be negative", s.ID)
		}
	}

	switch p.Family {
	case FamilyFrame:
		if len(p.FrameColors) == 0 {
			return fmt.Errorf("frame products require frame_colors")
		}
		if len(p.Fits) > 0 {
			return fmt.Errorf("frame products cannot declare fits")
		}
	case FamilyApparel:
		if len(p.Fits) == 0 {
			return fmt.Errorf("apparel products require fits")
		}
		if len(p.FrameColors) > 0 {
			return fmt.Errorf("apparel products cannot declare frame_colors")
		}
	default:
		return fmt.Errorf("unknown family %q", p.Family)
	}
	return nil
}

func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// PriceFor returns the unit price in cents for the given size.
func (p Product) PriceFor(sizeID string) (int32, error) {
	for _, s := range p.Sizes {
		if s.ID == sizeID {
			return p.BasePriceCents + s.SurchargeCents, nil
		}
	}
	return 0, fmt.Errorf("product %q has no size %q", p.ID, sizeID)
}

func (p Product) HasSize(sizeID string) bool {
	for _, s := range p.Sizes {
		if s.ID == sizeID {
			return true
		}
	}
	return false
}

func (p Product) HasFrameColor(color string) bool {
	for _, c := range p.FrameColors {
		if c == color {
			return true
		}
	}
	return false
}
