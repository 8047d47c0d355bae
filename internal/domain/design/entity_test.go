//go:build unit

package design_test

import (
	"strings"
	"testing"

	"printcanvas/internal/domain/design"
	"printcanvas/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrompt(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "simple prompt", raw: "a fox in a forest", want: "a fox in a forest"},
		{name: "surrounding whitespace trimmed", raw: "  a fox  ", want: "a fox"},
		{name: "empty", raw: "", errIs: design.ErrEmptyPrompt},
		{name: "whitespace only", raw: "   \t\n", errIs: design.ErrEmptyPrompt},
		{name: "at maximum length", raw: strings.Repeat("a", design.MaxPromptLength)},
		{name: "over maximum length", raw: strings.Repeat("a", design.MaxPromptLength+1), errIs: design.ErrPromptTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := design.NewPrompt(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			if tc.want != "" {
				assert.Equal(t, tc.want, p.String())
			}
		})
	}
}

func TestNewDesign(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDesignBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, design.StatusGenerating, actual.Status())
		assert.Equal(t, int32(0), actual.CreditsSpent())
	})

	t.Run("empty prompt rejected", func(t *testing.T) {
		b := builder.NewDesignBuilder().With(func(b *builder.DesignBuilder) { b.Prompt = "" })
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, design.ErrEmptyPrompt)
	})

	t.Run("lifecycle marks", func(t *testing.T) {
		d, err := builder.NewDesignBuilder().BuildDomain()
		require.NoError(t, err)

		d.MarkCompleted(1)
		assert.Equal(t, design.StatusCompleted, d.Status())
		assert.Equal(t, int32(1), d.CreditsSpent())

		d.MarkFailed()
		assert.Equal(t, design.StatusFailed, d.Status())
	})
}

func TestDesignStatus(t *testing.T) {
	assert.True(t, design.StatusGenerating.IsValid())
	assert.True(t, design.StatusCompleted.IsValid())
	assert.True(t, design.StatusFailed.IsValid())
	assert.False(t, design.Status("archived").IsValid())
}
