package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/salalivre/room-scheduler/internal/domain/appointment"
	"github.com/salalivre/room-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Room
// --------------------------------------------------

func (r *AppointmentGormRepository) GetRoomByID(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {

	base := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN users ON users.id = appointments.user_id")

	if q.UserID != nil {
		base = base.Where("appointments.user_id = ?", *q.UserID)
	}

	if q.Search != "" {
		like := "%" + q.Search + "%"
		base = base.Where(
			"users.name ILIKE ? OR users.last_name ILIKE ?",
			like, like,
		)
	}

	if q.DateFrom != nil && q.DateTo != nil {
		base = base.Where(
			"appointments.date_appointment BETWEEN ? AND ?",
			*q.DateFrom, *q.DateTo,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// OrderColumn/OrderDir vêm de whitelist no boundary, nunca direto
	// da query string.
	order := fmt.Sprintf("appointments.%s %s", q.OrderColumn, q.OrderDir)

	var aps []models.Appointment
	if err := base.
		Preload("User").
		Preload("Room").
		Order(order).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}
