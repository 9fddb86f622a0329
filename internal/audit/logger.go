package audit

import (
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/models"
)

// Módulos usados nas entradas de auditoria.
const (
	ModuleAccount      = "Minha Conta"
	ModuleAppointments = "Agendamentos"
	ModuleRooms        = "Salas"
	ModuleUsers        = "Usuários"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(userID uint, description, module string) error {
	entry := models.Log{
		UserID:      userID,
		Description: description,
		Module:      module,
	}

	return l.db.Create(&entry).Error
}
