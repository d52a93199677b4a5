package models

import (
	"time"

	"gorm.io/datatypes"
)

// OutputImage is a single generation request and, once the webhook lands,
// its result. ImageURL stays empty while Status is Pending.
type OutputImage struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Prompt  string `gorm:"not null" json:"prompt"`
	ModelID string `gorm:"index;not null" json:"model_id"`

	ProviderRequestID string         `gorm:"uniqueIndex" json:"provider_request_id"`
	Status            JobStatus      `gorm:"index;not null;default:'Pending'" json:"status"`
	ImageURL          string         `json:"image_url"`
	OwnerID           string         `gorm:"index;not null" json:"owner_id"`
	ProviderPayload   datatypes.JSON `json:"provider_payload,omitempty"`
}

func (OutputImage) TableName() string {
	return "output_images"
}
