package appointment

import (
	"context"
	"time"

	"github.com/salalivre/room-scheduler/internal/audit"
	domain "github.com/salalivre/room-scheduler/internal/domain/appointment"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/models"
	"github.com/salalivre/room-scheduler/internal/validators"
)

type CreateAppointmentInput struct {
	UserID uint

	Date   string
	Time   string
	RoomID uint
}

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	dispatcher audit.Sink,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: dispatcher,
		loc:   loc,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Validação antes de qualquer persistência.
	if !validators.IsDate(in.Date) || !validators.IsHourMinute(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_time")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_time")
	}

	room, err := uc.repo.GetRoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, httperr.ErrBusiness("room_not_found")
	}

	// O status inicial é fixo; qualquer valor vindo do cliente é
	// descartado no boundary.
	ap := &models.Appointment{
		Status:          string(domain.InitialStatus()),
		DateAppointment: start,
		UserID:          in.UserID,
		RoomID:          room.ID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:      in.UserID,
		Description: "Criação de Agendamento",
		Module:      audit.ModuleAppointments,
	})

	return ap, nil
}
