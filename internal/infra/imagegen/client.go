package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"
)

var (
	ErrGenerationRejected = errs.New("image generation rejected")
	ErrProviderFailure    = errs.New("image provider failure")
)

// GeneratedImage is the raw artwork returned by the provider.
type GeneratedImage struct {
	Data        []byte
	ContentType string
}

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.ImageGenConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// GenerateParams is the provider request. ReferenceImageB64 optionally seeds
// the generation with a customer-supplied photo.
type GenerateParams struct {
	Prompt            string
	StylePreset       string
	ReferenceImageB64 string
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Style     string `json:"style,omitempty"`
	Reference string `json:"reference_b64,omitempty"`
}

type generateResponse struct {
	ImageB64    string `json:"image_b64"`
	ContentType string `json:"content_type"`
}

func (c *Client) Generate(ctx context.Context, params GenerateParams) (*GeneratedImage, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:    params.Prompt,
		Style:     params.StylePreset,
		Reference: params.ReferenceImageB64,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode generation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build generation request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "generation request failed"), ErrProviderFailure)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, errs.Mark(errs.Newf("provider rejected prompt: status %d", resp.StatusCode), ErrGenerationRejected)
	default:
		return nil, errs.Mark(errs.Newf("provider returned status %d", resp.StatusCode), ErrProviderFailure)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read provider response"), ErrProviderFailure)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode provider response"), ErrProviderFailure)
	}

	data, err := base64.StdEncoding.DecodeString(decoded.ImageB64)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode image payload"), ErrProviderFailure)
	}

	contentType := decoded.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return &GeneratedImage{Data: data, ContentType: contentType}, nil
}
