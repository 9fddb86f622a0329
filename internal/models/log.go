package models

import "time"

// Log é append-only: a aplicação nunca atualiza nem remove linhas.
type Log struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string `gorm:"size:255;not null" json:"description"`
	Module      string `gorm:"size:50;not null" json:"module"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CreatedAt time.Time `json:"created_at"`
}
