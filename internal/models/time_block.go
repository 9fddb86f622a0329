package models

import "time"

// TimeBlock é uma duração de agendamento permitida, em minutos.
type TimeBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Minutes int `gorm:"not null" json:"minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
