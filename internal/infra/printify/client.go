package printify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSubmitFailed     = errs.New("print order submission failed")
	ErrInvalidSignature = errs.New("invalid webhook signature")
	ErrUnknownEvent     = errs.New("unknown webhook event")
)

// SignatureHeader carries the HMAC-SHA256 hex digest of the webhook body.
const SignatureHeader = "X-Pfy-Signature"

type Client struct {
	http          *http.Client
	baseURL       string
	apiToken      string
	shopID        string
	webhookSecret string
}

func NewClient(cfg config.PrintifyConfig) *Client {
	return &Client{
		http:          &http.Client{Timeout: cfg.Timeout},
		baseURL:       cfg.BaseURL,
		apiToken:      cfg.APIToken,
		shopID:        cfg.ShopID,
		webhookSecret: cfg.WebhookSecret,
	}
}

// SubmitOrderParams describes one print job. ImageURL must stay resolvable
// long enough for the provider to fetch it.
type SubmitOrderParams struct {
	OrderID       uuid.UUID
	ImageURL      string
	ProductTypeID string
	Size          string
	FrameColor    *string
	Quantity      int32
}

type lineItem struct {
	ProductType string            `json:"product_type"`
	Quantity    int32             `json:"quantity"`
	PrintURL    string            `json:"print_url"`
	Options     map[string]string `json:"options"`
}

type submitRequest struct {
	ExternalID string     `json:"external_id"`
	LineItems  []lineItem `json:"line_items"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// SubmitOrder sends the order to the provider and returns its print order id.
func (c *Client) SubmitOrder(ctx context.Context, params SubmitOrderParams) (string, error) {
	options := map[string]string{"size": params.Size}
	if params.FrameColor != nil {
		options["frame_color"] = *params.FrameColor
	}

	body, err := json.Marshal(submitRequest{
		ExternalID: params.OrderID.String(),
		LineItems: []lineItem{{
			ProductType: params.ProductTypeID,
			Quantity:    params.Quantity,
			PrintURL:    params.ImageURL,
			Options:     options,
		}},
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode print order")
	}

	url := fmt.Sprintf("%s/v1/shops/%s/orders.json", c.baseURL, c.shopID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build print order request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "print order request failed"), ErrSubmitFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.Mark(errs.Newf("provider returned status %d", resp.StatusCode), ErrSubmitFailed)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to read provider response"), ErrSubmitFailed)
	}

	var decoded submitResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to decode provider response"), ErrSubmitFailed)
	}
	if decoded.ID == "" {
		return "", errs.Mark(errs.New("provider response missing order id"), ErrSubmitFailed)
	}
	return decoded.ID, nil
}

// WebhookEvent is a provider-side order status change.
type WebhookEvent struct {
	PrintOrderID string
	Status       string
}

type webhookPayload struct {
	Topic    string `json:"topic"`
	Resource struct {
		ID string `json:"id"`
	} `json:"resource"`
}

// ParseWebhook verifies the body signature and maps the provider topic onto an
// order status.
func (c *Client) ParseWebhook(signature string, body []byte) (*WebhookEvent, error) {
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "failed to decode webhook payload")
	}
	if payload.Resource.ID == "" {
		return nil, errs.Mark(errs.New("webhook missing resource id"), ErrUnknownEvent)
	}

	status, ok := topicToStatus[payload.Topic]
	if !ok {
		return nil, errs.Mark(errs.Newf("unhandled topic %q", payload.Topic), ErrUnknownEvent)
	}

	return &WebhookEvent{PrintOrderID: payload.Resource.ID, Status: status}, nil
}

var topicToStatus = map[string]string{
	"order:sent-to-production": "processing",
	"order:shipment:created":   "shipped",
	"order:shipment:delivered": "delivered",
	"order:canceled":           "canceled",
}
