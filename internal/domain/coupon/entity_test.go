//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"printcanvas/internal/domain/coupon"
	"printcanvas/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "WELCOME10", actual.Code().String())
		assert.Equal(t, int32(10), actual.CreditAmount().Int32())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.MaxUses())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase input is normalized",
				mutate: func(b *builder.CouponBuilder) { b.Code = "welcome10" },
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.CouponBuilder) { b.Code = "  WELCOME10  " },
			},
			{
				name:   "too short",
				mutate: func(b *builder.CouponBuilder) { b.Code = "AB" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
			{
				name:   "too long",
				mutate: func(b *builder.CouponBuilder) { b.Code = "ABCDEFGHIJKLMNOPQRSTU" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
			{
				name:   "illegal characters",
				mutate: func(b *builder.CouponBuilder) { b.Code = "SUMMER-SALE" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
			{
				name:   "empty",
				mutate: func(b *builder.CouponBuilder) { b.Code = "" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
		})
	})

	t.Run("credit grant validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum grant",
				mutate: func(b *builder.CouponBuilder) { b.CreditAmount = 1 },
			},
			{
				name:   "zero grant",
				mutate: func(b *builder.CouponBuilder) { b.CreditAmount = 0 },
				errIs:  coupon.ErrInvalidCreditGrant,
			},
			{
				name:   "negative grant",
				mutate: func(b *builder.CouponBuilder) { b.CreditAmount = -5 },
				errIs:  coupon.ErrInvalidCreditGrant,
			},
			{
				name:   "zero max uses",
				mutate: func(b *builder.CouponBuilder) { b.WithMaxUses(0) },
				errIs:  coupon.ErrInvalidMaxUses,
			},
		})
	})
}

func TestCouponValidateRedeemable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*builder.CouponBuilder)
		errIs  error
	}{
		{
			name: "active coupon with no limits",
		},
		{
			name:   "inactive coupon",
			mutate: func(b *builder.CouponBuilder) { b.IsActive = false },
			errIs:  coupon.ErrInactive,
		},
		{
			name:   "expired coupon",
			mutate: func(b *builder.CouponBuilder) { b.WithExpiresAt(now.Add(-time.Hour)) },
			errIs:  coupon.ErrExpired,
		},
		{
			name:   "expires exactly now is still valid",
			mutate: func(b *builder.CouponBuilder) { b.WithExpiresAt(now) },
		},
		{
			name: "usage limit reached",
			mutate: func(b *builder.CouponBuilder) {
				b.WithMaxUses(3)
				b.UsedCount = 3
			},
			errIs: coupon.ErrExhausted,
		},
		{
			name: "one use remaining",
			mutate: func(b *builder.CouponBuilder) {
				b.WithMaxUses(3)
				b.UsedCount = 2
			},
		},
		{
			name: "inactive wins over expired",
			mutate: func(b *builder.CouponBuilder) {
				b.IsActive = false
				b.WithExpiresAt(now.Add(-time.Hour))
			},
			errIs: coupon.ErrInactive,
		},
		{
			name: "expired wins over exhausted",
			mutate: func(b *builder.CouponBuilder) {
				b.WithExpiresAt(now.Add(-time.Hour))
				b.WithMaxUses(1)
				b.UsedCount = 1
			},
			errIs: coupon.ErrExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			c, err := b.BuildDomain()
			require.NoError(t, err)

			err = c.ValidateRedeemable(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCouponRemainingUses(t *testing.T) {
	t.Run("unlimited coupon has no remaining count", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, c.RemainingUses())
	})

	t.Run("remaining is max minus used", func(t *testing.T) {
		b := builder.NewCouponBuilder().WithMaxUses(10)
		b.UsedCount = 4
		c, err := b.BuildDomain()
		require.NoError(t, err)

		remaining := c.RemainingUses()
		require.NotNil(t, remaining)
		assert.Equal(t, int32(6), *remaining)
	})
}
