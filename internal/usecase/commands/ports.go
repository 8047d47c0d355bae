package commands

import (
	"context"

	"printcanvas/internal/infra/imagegen"
	"printcanvas/internal/infra/printify"

	"github.com/google/uuid"
)

// External collaborators the write side depends on.

type ImageGenerator interface {
	Generate(ctx context.Context, params imagegen.GenerateParams) (*imagegen.GeneratedImage, error)
}

type DesignStore interface {
	UploadDesign(ctx context.Context, designID uuid.UUID, contentType string, data []byte) (string, error)
}

type PrintProvider interface {
	SubmitOrder(ctx context.Context, params printify.SubmitOrderParams) (string, error)
	ParseWebhook(signature string, body []byte) (*printify.WebhookEvent, error)
}

// InflightGuard serializes generations per customer.
type InflightGuard interface {
	Acquire(ctx context.Context, customerID uuid.UUID) (release func(), err error)
}
