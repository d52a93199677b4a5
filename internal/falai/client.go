package falai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/saransh-debugs/PixelAlchemy/config"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

const (
	trainingApp   = "fal-ai/flux-lora-fast-training"
	generationApp = "fal-ai/flux-lora"

	// Strength of the tensor application during generation.
	loraScale = 1
)

// SubmitResult is the provider's answer to a queue submission.
type SubmitResult struct {
	RequestID   string `json:"request_id"`
	ResponseURL string `json:"response_url"`
	StatusURL   string `json:"status_url"`
}

// Gateway submits training and generation jobs to the provider's
// asynchronous queue. Each call enqueues exactly one job.
type Gateway interface {
	SubmitTraining(ctx context.Context, zipURL, triggerWord string) (*SubmitResult, error)
	SubmitGeneration(ctx context.Context, prompt, tensorPath string) (*SubmitResult, error)
}

// Client talks to the fal.ai queue API.
type Client struct {
	baseURL     string
	apiKey      string
	webhookBase string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.FalQueueURL, "/"),
		apiKey:      cfg.FalKey,
		webhookBase: strings.TrimRight(cfg.WebhookBase, "/"),
		httpClient:  utils.NewHTTPClient(30 * time.Second),
	}
}

// SubmitTraining enqueues a LoRA training job for the given archive.
// The model name doubles as the trigger word.
func (c *Client) SubmitTraining(ctx context.Context, zipURL, triggerWord string) (*SubmitResult, error) {
	input := map[string]interface{}{
		"images_data_url": zipURL,
		"trigger_word":    triggerWord,
	}
	return c.submit(ctx, trainingApp, "/fal-ai/webhook/train", input)
}

// SubmitGeneration enqueues an image generation job against a trained tensor.
func (c *Client) SubmitGeneration(ctx context.Context, prompt, tensorPath string) (*SubmitResult, error) {
	input := map[string]interface{}{
		"prompt": prompt,
		"loras": []map[string]interface{}{
			{"path": tensorPath, "scale": loraScale},
		},
	}
	return c.submit(ctx, generationApp, "/fal-ai/webhook/image", input)
}

func (c *Client) submit(ctx context.Context, app, webhookPath string, input interface{}) (*SubmitResult, error) {
	payload, err := json.Marshal(map[string]interface{}{"input": input})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, app)
	if c.webhookBase != "" {
		q := url.Values{}
		q.Set("fal_webhook", c.webhookBase+webhookPath)
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fal queue submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fal queue returned status %d: %s", resp.StatusCode, string(body))
	}

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode fal queue response: %w", err)
	}
	if result.RequestID == "" {
		return nil, errors.New("fal queue response missing request_id")
	}

	return &result, nil
}
