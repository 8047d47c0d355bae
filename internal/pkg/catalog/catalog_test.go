//go:build unit

package catalog_test

import (
	"testing"

	"printcanvas/internal/pkg/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
products:
  - id: framed-print
    name: Framed Print
    family: frame
    base_price_cents: 4999
    shipping_cents: 895
    sizes:
      - { id: "8x10", label: '8" x 10"', surcharge_cents: 0 }
      - { id: "12x16", label: '12" x 16"', surcharge_cents: 1500 }
    frame_colors: [black, oak]

  - id: tee
    name: Classic Tee
    family: apparel
    base_price_cents: 2499
    shipping_cents: 495
    sizes:
      - { id: M, label: Medium, surcharge_cents: 0 }
    fits: [unisex]
`

func TestParse(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c, err := catalog.Parse([]byte(validCatalog))
		require.NoError(t, err)

		products := c.Products()
		require.Len(t, products, 2)

		want := catalog.Product{
			ID:             "framed-print",
			Name:           "Framed Print",
			Family:         catalog.FamilyFrame,
			BasePriceCents: 4999,
			ShippingCents:  895,
			Sizes: []catalog.SizeOption{
				{ID: "8x10", Label: `8" x 10"`, SurchargeCents: 0},
				{ID: "12x16", Label: `12" x 16"`, SurchargeCents: 1500},
			},
			FrameColors: []string{"black", "oak"},
		}
		if diff := cmp.Diff(want, products[0]); diff != "" {
			t.Errorf("first product mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lookup preserves declaration order", func(t *testing.T) {
		c, err := catalog.Parse([]byte(validCatalog))
		require.NoError(t, err)

		products := c.Products()
		assert.Equal(t, "framed-print", products[0].ID)
		assert.Equal(t, "tee", products[1].ID)

		_, ok := c.Product("framed-print")
		assert.True(t, ok)
		_, ok = c.Product("mug")
		assert.False(t, ok)
	})

	invalid := []struct {
		name string
		yaml string
	}{
		{name: "empty catalog", yaml: "products: []"},
		{
			name: "frame product without colors",
			yaml: `
products:
  - id: framed-print
    family: frame
    base_price_cents: 4999
    sizes: [{ id: "8x10" }]
`,
		},
		{
			name: "apparel product with frame colors",
			yaml: `
products:
  - id: tee
    family: apparel
    base_price_cents: 2499
    sizes: [{ id: M }]
    fits: [unisex]
    frame_colors: [black]
`,
		},
		{
			name: "unknown family",
			yaml: `
products:
  - id: sticker
    family: sticker
    base_price_cents: 499
    sizes: [{ id: one }]
`,
		},
		{
			name: "zero base price",
			yaml: `
products:
  - id: tee
    family: apparel
    base_price_cents: 0
    sizes: [{ id: M }]
    fits: [unisex]
`,
		},
		{
			name: "duplicate product id",
			yaml: `
products:
  - id: tee
    family: apparel
    base_price_cents: 2499
    sizes: [{ id: M }]
    fits: [unisex]
  - id: tee
    family: apparel
    base_price_cents: 2999
    sizes: [{ id: L }]
    fits: [unisex]
`,
		},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPriceFor(t *testing.T) {
	c, err := catalog.Parse([]byte(validCatalog))
	require.NoError(t, err)

	p, ok := c.Product("framed-print")
	require.True(t, ok)

	price, err := p.PriceFor("12x16")
	require.NoError(t, err)
	assert.Equal(t, int32(6499), price)

	_, err = p.PriceFor("24x36")
	assert.Error(t, err)

	assert.True(t, p.HasSize("8x10"))
	assert.False(t, p.HasSize("24x36"))
	assert.True(t, p.HasFrameColor("oak"))
	assert.False(t, p.HasFrameColor("walnut"))
}
