package appointment

import (
	"context"

	domain "github.com/salalivre/room-scheduler/internal/domain/appointment"
	"github.com/salalivre/room-scheduler/internal/dto"
	"github.com/salalivre/room-scheduler/internal/listing"
)

type ListAppointmentsInput struct {
	RequesterID uint
	IsAdmin     bool

	Filters listing.Filters
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentRow, int64, error) {

	q := domain.ListQuery{
		Search:      in.Filters.Search,
		OrderColumn: in.Filters.OrderColumn,
		OrderDir:    in.Filters.OrderDir,
		Limit:       in.Filters.Limit,
		Offset:      in.Filters.Offset(),
	}

	// Não-admins enxergam apenas os próprios agendamentos.
	if !in.IsAdmin {
		q.UserID = &in.RequesterID
	}

	if from, to, ok := in.Filters.DayRange(); ok {
		q.DateFrom = &from
		q.DateTo = &to
	}

	aps, total, err := uc.repo.ListAppointments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.AppointmentRow, 0, len(aps))
	for _, ap := range aps {
		userType := "Cliente"
		if ap.User.Admin {
			userType = "Admin"
		}

		rows = append(rows, dto.AppointmentRow{
			ID:              ap.ID,
			Status:          ap.Status,
			DateAppointment: ap.DateAppointment,
			Room: dto.RoomSummary{
				ID:   ap.Room.ID,
				Name: ap.Room.Name,
			},
			User: dto.UserSummary{
				ID:   ap.User.ID,
				Name: ap.User.Name + " " + ap.User.LastName,
				Type: userType,
			},
		})
	}

	return rows, total, nil
}
