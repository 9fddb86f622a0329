package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/models"
)

type TimeBlockHandler struct {
	db *gorm.DB
}

func NewTimeBlockHandler(db *gorm.DB) *TimeBlockHandler {
	return &TimeBlockHandler{db: db}
}

// ListAll devolve o catálogo inteiro; é dado de referência estático.
func (h *TimeBlockHandler) ListAll(c *gin.Context) {
	var blocks []models.TimeBlock
	if err := h.db.
		Order("minutes ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_time_blocks", "Erro ao listar blocos de tempo.")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *TimeBlockHandler) ListByRoom(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := h.db.
		Preload("TimeBlocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_blocks.minutes ASC")
		}).
		First(&room, "id = ?", roomID).Error; err != nil {

		httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		return
	}

	blocks := room.TimeBlocks
	if blocks == nil {
		blocks = []models.TimeBlock{}
	}

	c.JSON(http.StatusOK, blocks)
}
