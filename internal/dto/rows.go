package dto

import "time"

// Linhas achatadas para exibição em tabela no frontend.

type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type RoomSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AppointmentRow struct {
	ID              uint        `json:"id"`
	Status          string      `json:"status"`
	DateAppointment time.Time   `json:"date_appointment"`
	Room            RoomSummary `json:"room"`
	User            UserSummary `json:"user"`
}

type LogRow struct {
	ID          uint        `json:"id"`
	Description string      `json:"description"`
	Module      string      `json:"module"`
	CreatedAt   time.Time   `json:"created_at"`
	User        UserSummary `json:"user"`
}

type ClientPermissions struct {
	Appointments bool `json:"appointments"`
	Logs         bool `json:"logs"`
}

type ClientRow struct {
	ID          uint              `json:"id"`
	User        UserSummary       `json:"user"`
	Permissions ClientPermissions `json:"permissions"`
	CreatedAt   time.Time         `json:"created_at"`
	Address     string            `json:"address"`
	Status      bool              `json:"status"`
}
