package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/audit"
	"github.com/salalivre/room-scheduler/internal/config"
	"github.com/salalivre/room-scheduler/internal/handlers"
	infraRepo "github.com/salalivre/room-scheduler/internal/infra/repository"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/session"
	"github.com/salalivre/room-scheduler/internal/timezone"
	"github.com/salalivre/room-scheduler/internal/token"
	ucAppointment "github.com/salalivre/room-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, revoker session.Revoker) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := token.NewManager(cfg.JWTSecret)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, revoker, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, tokens, auditDispatcher, loc)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		loc,
	)

	roomHandler := handlers.NewRoomHandler(db, auditDispatcher)
	timeBlockHandler := handlers.NewTimeBlockHandler(db)
	logHandler := handlers.NewLogHandler(db, loc)

	// ======================================================
	// ROTAS
	// ======================================================
	authRequired := middleware.AuthMiddleware(tokens, revoker)
	adminOnly := middleware.RequireAdmin()

	r.POST("/login", authHandler.Login)
	r.POST("/user", userHandler.Register)

	secured := r.Group("/")
	secured.Use(authRequired)
	{
		secured.GET("/logout", authHandler.Logout)
		secured.GET("/profile", userHandler.Profile)

		secured.GET("/user/:id", userHandler.GetOne)
		secured.PUT("/user/:id", userHandler.Update)

		secured.GET("/users/clients", adminOnly, userHandler.Clients)
		secured.PUT("/user/:id/permission", adminOnly, userHandler.Permissions)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/appointments", appointmentHandler.List)
		secured.POST("/appointments",
			middleware.RequirePermission(middleware.FeatureAppointments),
			appointmentHandler.Create,
		)
		secured.PUT("/appointments/:id",
			middleware.RequirePermission(middleware.FeatureAppointments),
			appointmentHandler.Update,
		)

		// ------------------------------
		// ROOMS / TIME BLOCKS
		// ------------------------------
		secured.GET("/rooms", roomHandler.List)
		secured.GET("/room/:id", roomHandler.GetOne)
		secured.POST("/room", adminOnly, roomHandler.Upsert)
		secured.POST("/room/:id", adminOnly, roomHandler.Upsert)

		secured.GET("/room/:id/timeblocks", timeBlockHandler.ListByRoom)
		secured.GET("/timeblocks", adminOnly, timeBlockHandler.ListAll)

		// ------------------------------
		// LOGS
		// ------------------------------
		secured.GET("/logs",
			middleware.RequirePermission(middleware.FeatureLogs),
			logHandler.List,
		)
	}
}
