//go:build unit

package commands_test

import (
	"testing"

	"printcanvas/internal/pkg/catalog"
	"printcanvas/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
products:
  - id: framed-print
    name: Framed Print
    family: frame
    base_price_cents: 4999
    shipping_cents: 895
    sizes:
      - { id: "8x10", label: '8" x 10"', surcharge_cents: 0 }
      - { id: "12x16", label: '12" x 16"', surcharge_cents: 1500 }
    frame_colors: [black, white]
  - id: tee
    name: Classic Tee
    family: apparel
    base_price_cents: 2499
    shipping_cents: 495
    sizes:
      - { id: M, label: Medium, surcharge_cents: 0 }
    fits: [unisex]
`

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)
	return cat
}

func testCredits() config.CreditsConfig {
	return config.NewTestConfig().Credits
}

func ptr[T any](v T) *T {
	return &v
}
