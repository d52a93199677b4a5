package falai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saransh-debugs/PixelAlchemy/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		FalQueueURL: baseURL,
		FalKey:      "test-key",
		WebhookBase: "https://api.example.com",
	})
}

func TestSubmitTraining(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fal-ai/flux-lora-fast-training", r.URL.Path)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "https://api.example.com/fal-ai/webhook/train", r.URL.Query().Get("fal_webhook"))

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		input := body["input"].(map[string]interface{})
		assert.Equal(t, "https://x/archive.zip", input["images_data_url"])
		assert.Equal(t, "Alice", input["trigger_word"])

		json.NewEncoder(w).Encode(map[string]string{
			"request_id": "req-train-1",
			"status_url": "https://queue.fal.run/status/req-train-1",
		})
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	result, err := client.SubmitTraining(context.Background(), "https://x/archive.zip", "Alice")
	assert.NoError(t, err)
	assert.Equal(t, "req-train-1", result.RequestID)
	assert.Equal(t, "https://queue.fal.run/status/req-train-1", result.StatusURL)
}

func TestSubmitGeneration(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fal-ai/flux-lora", r.URL.Path)
		assert.Equal(t, "https://api.example.com/fal-ai/webhook/image", r.URL.Query().Get("fal_webhook"))

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		input := body["input"].(map[string]interface{})
		assert.Equal(t, "portrait of alice", input["prompt"])

		loras := input["loras"].([]interface{})
		assert.Len(t, loras, 1)
		lora := loras[0].(map[string]interface{})
		assert.Equal(t, "tensors/alice.safetensors", lora["path"])
		assert.Equal(t, float64(1), lora["scale"])

		json.NewEncoder(w).Encode(map[string]string{"request_id": "req-gen-1"})
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	result, err := client.SubmitGeneration(context.Background(), "portrait of alice", "tensors/alice.safetensors")
	assert.NoError(t, err)
	assert.Equal(t, "req-gen-1", result.RequestID)
}

func TestSubmitProviderError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid key"}`))
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	_, err := client.SubmitTraining(context.Background(), "https://x/archive.zip", "Alice")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSubmitMissingRequestID(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status_url": "https://queue.fal.run/status/x"})
	}))
	defer mockServer.Close()

	client := newTestClient(mockServer.URL)
	_, err := client.SubmitGeneration(context.Background(), "p", "t")
	assert.Error(t, err)
}
