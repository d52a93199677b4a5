package webhook

// TrainingWebhookRequest is the provider's training-completion callback body.
type TrainingWebhookRequest struct {
	RequestID  string `json:"request_id"`
	TensorPath string `json:"tensor_path"`
}

// ImageWebhookRequest is the provider's generation-completion callback body.
type ImageWebhookRequest struct {
	RequestID string `json:"request_id"`
	ImageURL  string `json:"image_url"`
}
