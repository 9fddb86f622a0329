package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/session"
	"github.com/salalivre/room-scheduler/internal/token"
)

const (
	// SessionCookie guarda "Bearer <jwt>", HTTP-only.
	SessionCookie = "token"

	// AdminCookie é só dica de redirect para o frontend, nunca entra
	// em decisão de autorização.
	AdminCookie = "admin"

	contextClaims = "sessionClaims"
)

// ClaimsFrom devolve as claims imutáveis montadas pelo AuthMiddleware.
func ClaimsFrom(c *gin.Context) *token.Claims {
	v, exists := c.Get(contextClaims)
	if !exists {
		return nil
	}

	claims, ok := v.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

func ClearSessionCookies(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.SetCookie(AdminCookie, "", -1, "/", "", false, false)
}

func AuthMiddleware(tokens *token.Manager, revoker session.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			raw = c.GetHeader("Authorization")
		}

		if raw == "" {
			httperr.Unauthorized(c, "missing_token", "Token não informado.")
			c.Abort()
			return
		}

		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			reject(c)
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			reject(c)
			return
		}

		c.Set(contextClaims, claims)
		c.Next()
	}
}

// reject limpa o cookie de sessão para que um token velho não seja
// reenviado em loop pelo navegador.
func reject(c *gin.Context) {
	ClearSessionCookies(c)
	httperr.Unauthorized(c, "invalid_token", "Token inválido.")
	c.Abort()
}
