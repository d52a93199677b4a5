package models

import "time"

// Pack is a named, predefined collection of prompts applied in bulk
// to one model in a single generation request.
type Pack struct {
	ID          string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`

	Prompts []PackPrompt `gorm:"foreignKey:PackID" json:"prompts,omitempty"`
}

func (Pack) TableName() string {
	return "packs"
}

// PackPrompt is one prompt in a pack. Position fixes the order in which
// prompts are submitted and results are returned.
type PackPrompt struct {
	ID       string `gorm:"type:uuid;primarykey" json:"id"`
	PackID   string `gorm:"index;not null" json:"pack_id"`
	Prompt   string `gorm:"not null" json:"prompt"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

func (PackPrompt) TableName() string {
	return "pack_prompts"
}
