package appointment

import "github.com/salalivre/room-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUnderReview Status = "Em análise"
	StatusScheduled   Status = "Agendado"
	StatusCanceled    Status = "Cancelado"
)

func IsValid(s Status) bool {
	switch s {
	case StatusUnderReview, StatusScheduled, StatusCanceled:
		return true
	}
	return false
}

// InitialStatus é o único status aceito na criação; o valor enviado
// pelo cliente é ignorado.
func InitialStatus() Status {
	return StatusUnderReview
}

// ===============================
// Validations
// ===============================

// CanTransition valida a mudança de status. Cancelado é terminal.
func CanTransition(current, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if current == StatusCanceled && next != StatusCanceled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
