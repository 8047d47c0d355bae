//go:build unit || integration

package builder

import (
	domdesign "printcanvas/internal/domain/design"
	reqdto "printcanvas/internal/handler/dto/request"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/shared"

	"github.com/google/uuid"
)

type DesignBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	Prompt        string
	StylePreset   string
	ProductTypeID string
	Size          string
	FrameColor    *string
	Status        string
	CreditsSpent  int32
	ImageURL      *string
}

func NewDesignBuilder() *DesignBuilder {
	url := "https://designs.example.com/designs/test.png"
	frameColor := "black"
	return &DesignBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Prompt:        "A watercolor fox in an autumn forest",
		StylePreset:   "watercolor",
		ProductTypeID: "framed-print",
		Size:          "12x16",
		FrameColor:    &frameColor,
		Status:        domdesign.StatusCompleted.String(),
		CreditsSpent:  1,
		ImageURL:      &url,
	}
}

func (b *DesignBuilder) With(mutate func(*DesignBuilder)) *DesignBuilder {
	mutate(b)
	return b
}

func (b *DesignBuilder) WithFrameColor(color string) *DesignBuilder {
	b.FrameColor = &color
	return b
}

func (b *DesignBuilder) BuildDomain() (*domdesign.Design, error) {
	return domdesign.NewDesign(b.CustomerID, b.Prompt, b.StylePreset, b.ProductTypeID, b.Size, b.FrameColor)
}

func (b *DesignBuilder) BuildSnapshot() *shared.DesignSnapshot {
	return &shared.DesignSnapshot{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		ProductTypeID:     b.ProductTypeID,
		Size:              b.Size,
		FrameColor:        b.FrameColor,
		Status:            b.Status,
		CreditsSpent:      b.CreditsSpent,
		GeneratedImageURL: b.ImageURL,
	}
}

func (b *DesignBuilder) BuildGenerateInput() commands.GenerateDesignInput {
	return commands.GenerateDesignInput{
		Prompt:        b.Prompt,
		StylePreset:   b.StylePreset,
		ProductTypeID: b.ProductTypeID,
		Size:          b.Size,
		FrameColor:    b.FrameColor,
	}
}

func (b *DesignBuilder) BuildGenerateRequestDTO() reqdto.GenerateDesignRequest {
	return reqdto.GenerateDesignRequest{
		Prompt:        b.Prompt,
		StylePreset:   b.StylePreset,
		ProductTypeID: b.ProductTypeID,
		Size:          b.Size,
		FrameColor:    b.FrameColor,
	}
}
