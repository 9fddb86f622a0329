package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Status string `gorm:"size:20;not null" json:"status"`

	DateAppointment time.Time `gorm:"column:date_appointment" json:"date_appointment"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	RoomID uint `json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
