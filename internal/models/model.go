package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobStatus tracks the lifecycle of an asynchronous provider job.
// Records are created Pending and move to Generated exactly once,
// when the matching webhook arrives. Generated is terminal.
type JobStatus string

const (
	JobStatusPending   JobStatus = "Pending"
	JobStatusGenerated JobStatus = "Generated"
)

type ModelType string

const (
	ModelTypeMan   ModelType = "Man"
	ModelTypeWoman ModelType = "Woman"
	ModelTypeOther ModelType = "Other"
)

// Model is a trained personalization unit. TensorPath is only set once
// training completes; generation against a model without a tensor is rejected.
type Model struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string    `gorm:"not null" json:"name"`
	Type      ModelType `gorm:"not null" json:"type"`
	Age       int       `gorm:"not null" json:"age"`
	Ethnicity string    `gorm:"not null" json:"ethinicity"`
	EyeColor  string    `gorm:"not null" json:"eyeColor"`
	Bald      bool      `json:"bald"`
	ZipURL    string    `gorm:"not null" json:"zipUrl"`

	// ProviderRequestID correlates the training job with its webhook.
	// Unique: a webhook must match at most one record. Null until
	// submission succeeds.
	ProviderRequestID *string        `gorm:"uniqueIndex" json:"provider_request_id"`
	TrainingStatus    JobStatus      `gorm:"index;not null;default:'Pending'" json:"training_status"`
	TensorPath        *string        `json:"tensor_path"`
	OwnerID           string         `gorm:"index;not null" json:"owner_id"`
	ProviderPayload   datatypes.JSON `json:"provider_payload,omitempty"`
}

func (Model) TableName() string {
	return "models"
}

// Trained reports whether the model can be used for generation.
func (m *Model) Trained() bool {
	return m.TrainingStatus == JobStatusGenerated && m.TensorPath != nil && *m.TensorPath != ""
}
