package appointment

import (
	"context"

	"github.com/salalivre/room-scheduler/internal/audit"
	domain "github.com/salalivre/room-scheduler/internal/domain/appointment"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	RequesterID uint
	IsAdmin     bool

	AppointmentID uint

	Status *string
	RoomID *uint
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateAppointment(
	repo domain.Repository,
	dispatcher audit.Sink,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// Não-admins só alcançam os próprios agendamentos; para os demais
	// a resposta é o mesmo 404 de um id inexistente.
	var (
		ap  *models.Appointment
		err error
	)
	if in.IsAdmin {
		ap, err = uc.repo.GetAppointment(ctx, in.AppointmentID)
	} else {
		ap, err = uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.RequesterID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.RoomID != nil {
		room, err := uc.repo.GetRoomByID(ctx, *in.RoomID)
		if err != nil {
			return nil, httperr.ErrBusiness("room_not_found")
		}
		ap.RoomID = room.ID
	}

	var changed domain.Status
	if in.Status != nil {
		next := domain.Status(*in.Status)

		// Somente admins confirmam agendamentos.
		if next == domain.StatusScheduled && !in.IsAdmin {
			return nil, httperr.ErrBusiness("access_denied")
		}

		if err := domain.SetStatus(ap, next); err != nil {
			return nil, err
		}
		changed = next
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	switch changed {
	case domain.StatusScheduled:
		uc.audit.Dispatch(audit.Event{
			UserID:      in.RequesterID,
			Description: "Agendamento Confirmado",
			Module:      audit.ModuleAppointments,
		})
	case domain.StatusCanceled:
		uc.audit.Dispatch(audit.Event{
			UserID:      in.RequesterID,
			Description: "Agendamento Cancelado",
			Module:      audit.ModuleAppointments,
		})
	}

	return ap, nil
}
