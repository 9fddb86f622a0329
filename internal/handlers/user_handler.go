package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/audit"
	"github.com/salalivre/room-scheduler/internal/dto"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/httpresp"
	"github.com/salalivre/room-scheduler/internal/listing"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/models"
	"github.com/salalivre/room-scheduler/internal/token"
	"github.com/salalivre/room-scheduler/internal/validators"
)

// bcryptCost é baixo de propósito: a aplicação roda em instâncias
// pequenas e o custo 8 já é adaptativo.
const bcryptCost = 8

type UserHandler struct {
	db     *gorm.DB
	tokens *token.Manager
	audit  audit.Sink
	loc    *time.Location
}

func NewUserHandler(
	db *gorm.DB,
	tokens *token.Manager,
	dispatcher audit.Sink,
	loc *time.Location,
) *UserHandler {
	return &UserHandler{
		db:     db,
		tokens: tokens,
		audit:  dispatcher,
		loc:    loc,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	LastName string `json:"last_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	ZipCode      string `json:"zip_code" binding:"required"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	LastName *string `json:"last_name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`

	ZipCode      *string `json:"zip_code"`
	Address      *string `json:"address"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
}

type PermissionsRequest struct {
	Logs         *bool `json:"logs"`
	Appointments *bool `json:"appointments"`
	Status       *bool `json:"status"`
}

// --------- Handlers ---------

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	if !validators.IsZipCode(req.ZipCode) {
		httperr.BadRequest(c, "validation_error", "CEP inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno do servidor.")
		return
	}

	user := models.User{
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		ZipCode:      req.ZipCode,
		Address:      req.Address,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,

		Admin:                  false,
		Status:                 true,
		PermissionLogs:         true,
		PermissionAppointments: true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro interno do servidor.")
		return
	}

	signed, err := h.tokens.Issue(user.ID, user.Admin, token.Permissions{
		Logs:         user.PermissionLogs,
		Appointments: user.PermissionAppointments,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno do servidor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:      user.ID,
		Description: "Cadastro de Usuário",
		Module:      audit.ModuleAccount,
	})

	setSessionCookies(c, signed, user.Admin)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Usuário criado com sucesso",
		"id":       user.ID,
		"name":     user.Name,
		"is_admin": user.Admin,
		"permissions": gin.H{
			"logs":         user.PermissionLogs,
			"appointments": user.PermissionAppointments,
		},
	})
}

func (h *UserHandler) Profile(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"last_name": user.LastName,
		"is_admin":  user.Admin,
		"permissions": gin.H{
			"logs":         user.PermissionLogs,
			"appointments": user.PermissionAppointments,
		},
	})
}

func (h *UserHandler) GetOne(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	id := c.Param("id")

	if !claims.IsAdmin && strconv.FormatUint(uint64(claims.UserID), 10) != id {
		httperr.Forbidden(c, "access_denied", "Acesso negado.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	id := c.Param("id")

	if !claims.IsAdmin && strconv.FormatUint(uint64(claims.UserID), 10) != id {
		httperr.Forbidden(c, "access_denied", "Acesso negado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	if req.ZipCode != nil && !validators.IsZipCode(*req.ZipCode) {
		httperr.BadRequest(c, "validation_error", "CEP inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			var count int64
			h.db.Model(&models.User{}).
				Where("email = ? AND id <> ?", email, user.ID).
				Count(&count)
			if count > 0 {
				httperr.BadRequest(c, "email_already_registered", "Email já cadastrado.")
				return
			}
		}
		user.Email = email
	}

	applyIfSet(&user.Name, req.Name)
	applyIfSet(&user.LastName, req.LastName)
	applyIfSet(&user.ZipCode, req.ZipCode)
	applyIfSet(&user.Address, req.Address)
	applyIfSet(&user.Number, req.Number)
	applyIfSet(&user.Complement, req.Complement)
	applyIfSet(&user.Neighborhood, req.Neighborhood)
	applyIfSet(&user.City, req.City)
	applyIfSet(&user.State, req.State)

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro interno do servidor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:      claims.UserID,
		Description: "Atualização de Usuário",
		Module:      audit.ModuleAccount,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Usuário atualizado com sucesso"})
}

// Clients lista contas não-admin, paginadas, para a tela de gestão.
func (h *UserHandler) Clients(c *gin.Context) {
	filters := listing.Parse(c.Request.URL.Query(), listing.Options{
		SortColumns: map[string]string{
			"name":       "name",
			"created_at": "created_at",
		},
		DefaultColumn: "name",
		DefaultDir:    "ASC",
		Location:      h.loc,
	})

	q := h.db.Model(&models.User{}).Where("admin = ?", false)

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		q = q.Where("name ILIKE ? OR last_name ILIKE ?", like, like)
	}

	if from, to, ok := filters.DayRange(); ok {
		q = q.Where("created_at BETWEEN ? AND ?", from, to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro interno do servidor.")
		return
	}

	var users []models.User
	if err := q.
		Order(filters.OrderColumn + " " + filters.OrderDir).
		Limit(filters.Limit).
		Offset(filters.Offset()).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro interno do servidor.")
		return
	}

	rows := make([]dto.ClientRow, 0, len(users))
	for _, u := range users {
		userType := "Cliente"
		if u.Admin {
			userType = "Admin"
		}

		rows = append(rows, dto.ClientRow{
			ID: u.ID,
			User: dto.UserSummary{
				ID:   u.ID,
				Name: u.Name + " " + u.LastName,
				Type: userType,
			},
			Permissions: dto.ClientPermissions{
				Appointments: u.PermissionAppointments,
				Logs:         u.PermissionLogs,
			},
			CreatedAt: u.CreatedAt,
			Address: fmt.Sprintf("%s, %s - %s - %s - %s/%s",
				u.Address, u.Number, u.Complement, u.Neighborhood, u.City, u.State),
			Status: u.Status,
		})
	}

	httpresp.Page(c, rows, total, filters.Page, filters.Limit)
}

func (h *UserHandler) Permissions(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	id := c.Param("id")

	var req PermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Erro de validação.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	updates := map[string]any{}
	if req.Logs != nil {
		updates["permission_logs"] = *req.Logs
	}
	if req.Appointments != nil {
		updates["permission_appointments"] = *req.Appointments
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_user", "Erro interno do servidor.")
			return
		}

		h.audit.Dispatch(audit.Event{
			UserID:      claims.UserID,
			Description: "Atualização de Permissões",
			Module:      audit.ModuleUsers,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permissões atualizadas com sucesso"})
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
