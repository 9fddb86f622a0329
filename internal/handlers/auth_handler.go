package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/audit"
	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/models"
	"github.com/salalivre/room-scheduler/internal/session"
	"github.com/salalivre/room-scheduler/internal/token"
)

type AuthHandler struct {
	db      *gorm.DB
	tokens  *token.Manager
	revoker session.Revoker
	audit   audit.Sink
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *token.Manager,
	revoker session.Revoker,
	dispatcher audit.Sink,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		tokens:  tokens,
		revoker: revoker,
		audit:   dispatcher,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Contas desativadas são tratadas como inexistentes.
	var user models.User
	if err := h.db.
		Where("email = ? AND status = ?", email, true).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.NotFound(c, "incorrect_password", "Senha incorreta.")
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
		Description: "Login",
		Module:      audit.ModuleAccount,
	})

	setSessionCookies(c, signed, user.Admin)

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"is_admin": user.Admin,
		"permissions": gin.H{
			"logs":         user.PermissionLogs,
			"appointments": user.PermissionAppointments,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		httperr.Unauthorized(c, "missing_token", "Token não informado.")
		return
	}

	// Revoga o jti até o exp do token; sem isso um Authorization
	// header antigo seguiria funcionando após o logout.
	if claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		_ = h.revoker.Revoke(c.Request.Context(), claims.ID, ttl)
	}

	h.audit.Dispatch(audit.Event{
		UserID:      claims.UserID,
		Description: "Logout",
		Module:      audit.ModuleAccount,
	})

	middleware.ClearSessionCookies(c)

	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

// setSessionCookies grava o cookie de sessão HTTP-only e o cookie
// "admin" visível ao frontend (só dica de redirect).
func setSessionCookies(c *gin.Context, signed string, isAdmin bool) {
	maxAge := int(token.TTL / time.Second)

	c.SetCookie(middleware.SessionCookie, "Bearer "+signed, maxAge, "/", "", false, true)
	c.SetCookie(middleware.AdminCookie, strconv.FormatBool(isAdmin), maxAge, "/", "", false, false)
}
