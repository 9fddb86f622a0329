package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/dto"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/httpresp"
	"github.com/salalivre/room-scheduler/internal/listing"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/models"
)

type LogHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewLogHandler(db *gorm.DB, loc *time.Location) *LogHandler {
	return &LogHandler{db: db, loc: loc}
}

func (h *LogHandler) List(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	filters := listing.Parse(c.Request.URL.Query(), listing.Options{
		SortColumns: map[string]string{
			"created_at":  "logs.created_at",
			"description": "logs.description",
			"module":      "logs.module",
		},
		DefaultColumn: "logs.created_at",
		DefaultDir:    "DESC",
		Location:      h.loc,
	})

	q := h.db.Model(&models.Log{}).
		Joins("JOIN users ON users.id = logs.user_id")

	// Não-admins só enxergam as próprias entradas.
	if !claims.IsAdmin {
		q = q.Where("logs.user_id = ?", claims.UserID)
	}

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		q = q.Where(
			"logs.description ILIKE ? OR logs.module ILIKE ? OR users.name ILIKE ? OR users.last_name ILIKE ?",
			like, like, like, like,
		)
	}

	if from, to, ok := filters.DayRange(); ok {
		q = q.Where("logs.created_at BETWEEN ? AND ?", from, to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_logs", "Erro interno do servidor.")
		return
	}

	var logs []models.Log
	if err := q.
		Preload("User").
		Order(filters.OrderColumn + " " + filters.OrderDir).
		Limit(filters.Limit).
		Offset(filters.Offset()).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_logs", "Erro interno do servidor.")
		return
	}

	rows := make([]dto.LogRow, 0, len(logs))
	for _, entry := range logs {
		userType := "Cliente"
		if entry.User.Admin {
			userType = "Admin"
		}

		rows = append(rows, dto.LogRow{
			ID:          entry.ID,
			Description: entry.Description,
			Module:      entry.Module,
			CreatedAt:   entry.CreatedAt,
			User: dto.UserSummary{
				ID:   entry.User.ID,
				Name: entry.User.Name + " " + entry.User.LastName,
				Type: userType,
			},
		})
	}

	httpresp.Page(c, rows, total, filters.Page, filters.Limit)
}
