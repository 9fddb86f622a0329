package appointment

import "github.com/salalivre/room-scheduler/internal/models"

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}
