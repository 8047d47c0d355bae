package design

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyPrompt   = errors.New("prompt cannot be empty")
	ErrPromptTooLong = errors.New("prompt exceeds maximum length")
)

const MaxPromptLength = 2000

type Prompt string

func NewPrompt(raw string) (Prompt, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyPrompt
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return "", ErrPromptTooLong
	}
	return Prompt(trimmed), nil
}

func (p Prompt) String() string {
	return string(p)
}

// Design is one generated artwork plus its print configuration. It is owned
// exclusively by its customer; only the owner may delete it.
type Design struct {
	id            uuid.UUID
	customerID    uuid.UUID
	prompt        Prompt
	stylePreset   string
	productTypeID string
	size          string
	frameColor    *string
	status        Status
	creditsSpent  int32
}

func NewDesign(
	customerID uuid.UUID,
	prompt string,
	stylePreset string,
	productTypeID string,
	size string,
	frameColor *string,
) (*Design, error) {
	p, err := NewPrompt(prompt)
	if err != nil {
		return nil, err
	}

	return &Design{
		id:            uuid.New(),
		customerID:    customerID,
		prompt:        p,
		stylePreset:   stylePreset,
		productTypeID: productTypeID,
		size:          size,
		frameColor:    frameColor,
		status:        StatusGenerating,
	}, nil
}

func (d *Design) MarkCompleted(creditsSpent int32) {
	d.status = StatusCompleted
	d.creditsSpent = creditsSpent
}

func (d *Design) MarkFailed() {
	d.status = StatusFailed
}

func (d *Design) ID() uuid.UUID         { return d.id }
func (d *Design) CustomerID() uuid.UUID { return d.customerID }
func (d *Design) Prompt() Prompt        { return d.prompt }
func (d *Design) StylePreset() string   { return d.stylePreset }
func (d *Design) ProductTypeID() string { return d.productTypeID }
func (d *Design) Size() string          { return d.size }
func (d *Design) FrameColor() *string   { return d.frameColor }
func (d *Design) Status() Status        { return d.status }
func (d *Design) CreditsSpent() int32   { return d.creditsSpent }
