package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100;not null" json:"last_name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	ZipCode      string `gorm:"size:9" json:"zip_code"`
	Address      string `gorm:"size:255" json:"address"`
	Number       string `gorm:"size:20" json:"number"`
	Complement   string `gorm:"size:100" json:"complement"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:2" json:"state"`

	Admin bool `gorm:"default:false" json:"admin"`

	// Status false desativa a conta sem apagar o histórico.
	Status bool `gorm:"default:true" json:"status"`

	PermissionLogs         bool `gorm:"default:true" json:"permission_logs"`
	PermissionAppointments bool `gorm:"default:true" json:"permission_appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
