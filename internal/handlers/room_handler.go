package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/audit"
	"github.com/salalivre/room-scheduler/internal/dto"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/models"
	"github.com/salalivre/room-scheduler/internal/validators"
)

type RoomHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewRoomHandler(db *gorm.DB, dispatcher audit.Sink) *RoomHandler {
	return &RoomHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Requests ---------

type UpsertRoomRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	TimeBlocks []uint `json:"time_blocks"`
}

// --------- Handlers ---------

// List devolve só id+nome, para preencher selects no frontend.
func (h *RoomHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Model(&models.Room{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var rooms []dto.RoomSummary
	if err := q.
		Select("id", "name").
		Order("name ASC").
		Limit(20).
		Scan(&rooms).Error; err != nil {

		httperr.Internal(c, "failed_to_list_rooms", "Erro ao listar salas.")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := h.db.
		Preload("TimeBlocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_blocks.minutes ASC")
		}).
		First(&room, "id = ?", id).Error; err != nil {

		httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		return
	}

	c.JSON(http.StatusOK, room)
}

// Upsert cria ou atualiza pela chave de nome e substitui o conjunto de
// blocos de tempo. Delete + insert das linhas de junção roda dentro da
// mesma transação para a sala nunca ficar sem blocos em caso de falha.
func (h *RoomHandler) Upsert(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	if !validators.IsHourMinute(req.StartTime) || !validators.IsHourMinute(req.EndTime) {
		httperr.BadRequest(c, "validation_error", "Horário deve estar no formato HH:MM.")
		return
	}

	name := strings.TrimSpace(req.Name)

	var created bool

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Where("name = ?", name).First(&room).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			created = true
			room = models.Room{
				Name:      name,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
			}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}

		case err != nil:
			return err

		default:
			room.StartTime = req.StartTime
			room.EndTime = req.EndTime
			if err := tx.Save(&room).Error; err != nil {
				return err
			}
		}

		if err := tx.
			Where("room_id = ?", room.ID).
			Delete(&models.RoomTimeBlock{}).Error; err != nil {
			return err
		}

		for _, blockID := range req.TimeBlocks {
			var block models.TimeBlock
			if err := tx.First(&block, blockID).Error; err != nil {
				return httperr.ErrBusiness("time_block_not_found")
			}

			join := models.RoomTimeBlock{
				RoomID:      room.ID,
				TimeBlockID: blockID,
			}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "time_block_not_found") {
			httperr.NotFound(c, "time_block_not_found", "Bloco de tempo não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_save_room", "Erro ao salvar sala.")
		return
	}

	description := "Sala Alterada"
	message := "Sala atualizada com sucesso"
	status := http.StatusOK
	if created {
		description = "Sala Criada"
		message = "Sala criada com sucesso"
		status = http.StatusCreated
	}

	h.audit.Dispatch(audit.Event{
		UserID:      claims.UserID,
		Description: description,
		Module:      audit.ModuleRooms,
	})

	c.JSON(status, gin.H{"message": message})
}
