package generate

// GenerateImageRequest asks for images of a trained model from a prompt.
type GenerateImageRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	ModelID string `json:"modelId" binding:"required"`
	Num     int    `json:"num" binding:"required,gt=0"`
}

type GenerateImageResponse struct {
	ImageID string `json:"imageId"`
}
