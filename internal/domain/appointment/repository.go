package appointment

import (
	"context"
	"time"

	"github.com/salalivre/room-scheduler/internal/models"
)

// ListQuery carrega os filtros já validados pelo boundary HTTP.
type ListQuery struct {
	// UserID limita a listagem ao dono; nil lista tudo (admin).
	UserID *uint

	Search string

	DateFrom *time.Time
	DateTo   *time.Time

	OrderColumn string
	OrderDir    string

	Limit  int
	Offset int
}

type Repository interface {
	// -------- Room --------
	GetRoomByID(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		q ListQuery,
	) ([]models.Appointment, int64, error)
}
