//go:build unit

package customer_test

import (
	"testing"

	"printcanvas/internal/domain/customer"
	"printcanvas/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "artprints.myshopify.com", actual.ShopDomain())
		assert.Equal(t, int32(5), actual.Credits().Int32())
		assert.Equal(t, int32(0), actual.FreeGenerationsUsed())
	})

	t.Run("empty shop domain", func(t *testing.T) {
		b := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.ShopDomain = "" })
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, customer.ErrInvalidShop)
	})

	t.Run("empty external id", func(t *testing.T) {
		b := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.ExternalID = "" })
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, customer.ErrInvalidExternal)
	})

	t.Run("negative balance", func(t *testing.T) {
		b := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.Credits = -1 })
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, customer.ErrNegativeCredits)
	})
}

func TestHasFreeGeneration(t *testing.T) {
	const allowance = int32(3)

	cases := []struct {
		name     string
		used     int32
		expected bool
	}{
		{name: "none used", used: 0, expected: true},
		{name: "one below allowance", used: 2, expected: true},
		{name: "allowance reached", used: 3, expected: false},
		{name: "past allowance", used: 5, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.FreeGenerationsUsed = tc.used })
			c, err := b.BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.HasFreeGeneration(allowance))
		})
	}
}

func TestCredits(t *testing.T) {
	t.Run("zero balance is valid", func(t *testing.T) {
		c, err := customer.NewCredits(0)
		require.NoError(t, err)
		assert.Equal(t, int32(0), c.Int32())
	})

	t.Run("negative balance rejected", func(t *testing.T) {
		_, err := customer.NewCredits(-1)
		assert.ErrorIs(t, err, customer.ErrNegativeCredits)
	})

	t.Run("can debit", func(t *testing.T) {
		c, err := customer.NewCredits(3)
		require.NoError(t, err)

		assert.True(t, c.CanDebit(0))
		assert.True(t, c.CanDebit(3))
		assert.False(t, c.CanDebit(4))
		assert.False(t, c.CanDebit(-1))
	})
}
