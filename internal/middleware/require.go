package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/salalivre/room-scheduler/internal/httperr"
)

type Feature string

const (
	FeatureLogs         Feature = "logs"
	FeatureAppointments Feature = "appointments"
)

// RequireAdmin roda depois do AuthMiddleware; sem claims é 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			httperr.Unauthorized(c, "missing_token", "Token não informado.")
			c.Abort()
			return
		}

		if !claims.IsAdmin {
			httperr.Forbidden(c, "access_denied", "Somente admins podem fazer essa operação.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func RequirePermission(feature Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			httperr.Unauthorized(c, "missing_token", "Token não informado.")
			c.Abort()
			return
		}

		allowed := false
		switch feature {
		case FeatureLogs:
			allowed = claims.Permissions.Logs
		case FeatureAppointments:
			allowed = claims.Permissions.Appointments
		}

		if !allowed {
			httperr.Forbidden(c, "access_denied", "Acesso negado.")
			c.Abort()
			return
		}

		c.Next()
	}
}
