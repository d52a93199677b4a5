package pack

import "github.com/saransh-debugs/PixelAlchemy/internal/models"

// GenerateFromPackRequest applies every prompt of a pack to one model.
type GenerateFromPackRequest struct {
	ModelID string `json:"modelId" binding:"required"`
	PackID  string `json:"packId" binding:"required"`
}

// GenerateFromPackResponse lists the created image ids positionally
// matching the pack's prompt order.
type GenerateFromPackResponse struct {
	Images []string `json:"images"`
}

type PackSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PromptCount int    `json:"prompt_count"`
}

type ListPacksResponse struct {
	Packs []PackSummary `json:"packs"`
}

func toSummary(p models.Pack) PackSummary {
	return PackSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PromptCount: len(p.Prompts),
	}
}
