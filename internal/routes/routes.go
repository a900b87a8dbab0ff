package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/navaja-app/barbershop-api/internal/audit"
	"github.com/navaja-app/barbershop-api/internal/config"
	"github.com/navaja-app/barbershop-api/internal/handlers"
	infraRepo "github.com/navaja-app/barbershop-api/internal/infra/repository"
	"github.com/navaja-app/barbershop-api/internal/middleware"
	"github.com/navaja-app/barbershop-api/internal/notify"
	"github.com/navaja-app/barbershop-api/internal/token"
	ucAppointment "github.com/navaja-app/barbershop-api/internal/usecase/appointment"
	ucAuth "github.com/navaja-app/barbershop-api/internal/usecase/auth"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	sessionStore := infraRepo.NewSessionRedisStore(rdb)
	codeStore := infraRepo.NewTwoFactorRedisStore(rdb)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	codeSender := notify.NewLogSender(log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	authUC := ucAuth.New(
		userRepo,
		sessionStore,
		codeStore,
		codeSender,
		tokens,
		auditDispatcher,
		cfg.TokenTTL,
		cfg.TwoFactorTTL,
		cfg.ResendCooldown,
	)

	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(updateStatusUC)
	listMyUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listDayUC := ucAppointment.NewListBarberDay(appointmentRepo)
	listRangeUC := ucAppointment.NewListAllByRange(appointmentRepo)
	statsUC := ucAppointment.NewGetStats(appointmentRepo)
	slotsUC := ucAppointment.NewGetAvailableSlots(
		appointmentRepo,
		cfg.DayStart,
		cfg.DayEnd,
		cfg.SlotGranularityMin,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authUC)
	barberHandler := handlers.NewBarberHandler(db, slotsUC)
	serviceHandler := handlers.NewServiceHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateStatusUC,
		cancelUC,
		listMyUC,
		listDayUC,
		listRangeUC,
		statsUC,
	)

	authRequired := middleware.AuthMiddleware(tokens, sessionStore)

	clientOnly := middleware.RequireRoles("Client", "Cliente")
	barberOnly := middleware.RequireRoles("Barber", "Barbero")
	adminOnly := middleware.RequireRoles("Administrator", "Administrador", "Manager")
	staffOnly := middleware.RequireRoles(
		"Barber", "Barbero",
		"Administrator", "Administrador", "Manager",
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/verify-2fa", authHandler.VerifyTwoFactor)
		api.POST("/auth/resend-2fa", authHandler.ResendTwoFactor)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(authRequired)
		{
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id", barberHandler.Get)
			secured.GET("/barbers/:id/available-slots", barberHandler.AvailableSlots)
			secured.PUT("/barbers/my-availability", barberOnly, barberHandler.UpdateMyAvailability)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", adminOnly, serviceHandler.Create)
			secured.PUT("/services/:id", adminOnly, serviceHandler.Update)
			secured.DELETE("/services/:id", adminOnly, serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", clientOnly, appointmentHandler.Create)
			secured.GET("/appointments/my-appointments", clientOnly, appointmentHandler.MyAppointments)
			secured.GET("/appointments/barber-appointments", barberOnly, appointmentHandler.BarberAppointments)
			secured.GET("/appointments/all", adminOnly, appointmentHandler.All)
			secured.GET("/appointments/stats", adminOnly, appointmentHandler.Stats)
			secured.PUT("/appointments/:id/status", staffOnly, appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
		}
	}
}
