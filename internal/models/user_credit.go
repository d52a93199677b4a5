package models

import "time"

// UserCredit holds the generation balance for an owner. Only consulted
// when credit gating is enabled.
type UserCredit struct {
	OwnerID   string    `gorm:"primarykey" json:"owner_id"`
	Amount    int       `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserCredit) TableName() string {
	return "user_credits"
}
