package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/httpresp"
	"github.com/salalivre/room-scheduler/internal/listing"
	"github.com/salalivre/room-scheduler/internal/middleware"
	ucAppointment "github.com/salalivre/room-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	loc      *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		loc:      loc,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	RoomID uint   `json:"room_id" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	RoomID *uint   `json:"room_id"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID: claims.UserID,
		Date:   req.Date,
		Time:   req.Time,
		RoomID: req.RoomID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_time"):
			httperr.BadRequest(c, "invalid_date_time", "Data/Horário inválido.")
		case httperr.IsBusiness(err, "room_not_found"):
			httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro interno do servidor.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Agendamento criado com sucesso"})
}

func (h *AppointmentHandler) List(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	filters := listing.Parse(c.Request.URL.Query(), listing.Options{
		SortColumns: map[string]string{
			"date_appointment": "date_appointment",
			"status":           "status",
			"created_at":       "created_at",
		},
		DefaultColumn: "date_appointment",
		DefaultDir:    "DESC",
		Location:      h.loc,
	})

	rows, total, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		RequesterID: claims.UserID,
		IsAdmin:     claims.IsAdmin,
		Filters:     filters,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro interno do servidor.")
		return
	}

	httpresp.Page(c, rows, total, filters.Page, filters.Limit)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		RequesterID:   claims.UserID,
		IsAdmin:       claims.IsAdmin,
		AppointmentID: uint(id),
		Status:        req.Status,
		RoomID:        req.RoomID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "room_not_found"):
			httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		case httperr.IsBusiness(err, "access_denied"):
			httperr.Forbidden(c, "access_denied", "Acesso negado.")
		case httperr.IsBusiness(err, "invalid_status"), httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Mudança de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro interno do servidor.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Agendamento atualizado com sucesso",
		"appointment": ap,
	})
}
