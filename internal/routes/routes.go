package routes

import (
	"context"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/style"
	ucAccount "github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	ucAdmin "github.com/BruksfildServices01/salon-booking/internal/usecase/admin"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucDashboard "github.com/BruksfildServices01/salon-booking/internal/usecase/dashboard"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Deps carries the long-lived infrastructure the routes are built on.
// Context bounds background work such as the rate limiter cleanup.
// Context, Redis, Tracer, Previews and Clock are optional.
type Deps struct {
	Context context.Context

	DB     *gorm.DB
	Config *config.Config
	Audit  audit.Recorder
	Health *handlers.HealthHandler

	Redis    *redis.Client
	Tracer   trace.Tracer
	Previews style.Uploader
	Clock    handlers.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	validators.RegisterJSONTagNames()

	ctx := d.Context
	if ctx == nil {
		ctx = context.Background()
	}

	recorder := d.Audit
	if recorder == nil {
		recorder = audit.Nop{}
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	if d.Tracer != nil {
		r.Use(middleware.Tracing(d.Tracer))
	}
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	salonRepo := infraRepo.NewSalonGormRepository(d.DB)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(d.DB)

	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Expire)

	aiLimiter := middleware.NewRateLimiter(
		ctx,
		d.Redis,
		middleware.PerMinute(cfg.RateLimit.Requests, cfg.RateLimit.Burst),
		"ai",
	)

	// ======================================================
	// USE CASES
	// ======================================================
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)

	registerUC := ucAccount.NewRegister(userRepo, tokens, recorder)
	registerUC.CheckDomain = cfg.App.ValidateEmailDomain

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, recorder),
		ucBooking.NewUpdateBookingStatus(bookingRepo, recorder),
		listUserBookingsUC,
		ucBooking.NewListSalonBookings(bookingRepo),
	)

	salonHandler := handlers.NewSalonHandler(
		ucSalon.NewListApprovedSalons(salonRepo),
		ucSalon.NewGetSalon(salonRepo),
		ucSalon.NewRegisterSalon(salonRepo, recorder),
	)

	barberHandler := handlers.NewBarberHandler(
		ucSalon.NewListBarbers(barberRepo),
		ucSalon.NewAddBarber(salonRepo, barberRepo, recorder),
		ucSalon.NewUpdateBarber(barberRepo, recorder),
		ucSalon.NewDeleteBarber(barberRepo, recorder),
	)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewSalonDashboard(salonRepo, bookingRepo),
		ucDashboard.NewSalonAnalytics(bookingRepo),
		d.Clock,
	)

	adminHandler := handlers.NewAdminHandler(handlers.AdminUseCases{
		Dashboard: ucAdmin.NewDashboard(userRepo, salonRepo, bookingRepo),
		Users:     ucAdmin.NewListUsers(userRepo),
		Salons:    ucAdmin.NewListSalons(salonRepo),
		Bookings:  ucAdmin.NewListBookings(bookingRepo),
		Analytics: ucAdmin.NewAnalytics(salonRepo, bookingRepo),
		Moderate:  ucAdmin.NewModerateSalon(salonRepo, recorder),
	}, d.Clock)

	auditLogsHandler := handlers.NewAuditLogsHandler(ucAdmin.NewListAuditLogs(auditLogRepo))

	authHandler := handlers.NewAuthHandler(registerUC, ucAccount.NewLogin(userRepo, tokens))
	meHandler := handlers.NewMeHandler(ucAccount.NewMe(userRepo, salonRepo), listUserBookingsUC)

	styleHandler := handlers.NewStyleHandler(style.NewService(cfg.Style.MaxDimension, d.Previews))

	healthHandler := d.Health
	if healthHandler == nil {
		healthHandler = handlers.NewHealthHandler(cfg.App.Environment, nil)
	}

	// ======================================================
	// PROBES
	// ======================================================
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// ------------------------------
		// BOOKING (public)
		// ------------------------------
		booking := api.Group("/booking")
		{
			booking.GET("/salons", salonHandler.ListApproved)
			booking.GET("/salon/:salon_id", salonHandler.Get)
			booking.GET("/salon/:salon_id/bookings", bookingHandler.ListBySalon)
			booking.POST("/book", bookingHandler.Create)
			booking.GET("/bookings/:user_id", bookingHandler.ListByUser)
			booking.PUT("/booking/:booking_id/status", bookingHandler.UpdateStatus)
		}

		// ------------------------------
		// SALON SELF-SERVICE
		// ------------------------------
		salon := api.Group("/salon/:salon_id")
		{
			salon.GET("/dashboard", dashboardHandler.Dashboard)
			salon.GET("/analytics", dashboardHandler.Analytics)
			salon.GET("/barbers", barberHandler.List)
			salon.POST("/barbers", barberHandler.Create)
			salon.PUT("/barber/:barber_id", barberHandler.Update)
			salon.DELETE("/barber/:barber_id", barberHandler.Delete)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.Users)
			admin.GET("/salons", adminHandler.Salons)
			admin.GET("/bookings", adminHandler.Bookings)
			admin.GET("/analytics", adminHandler.Analytics)
			admin.GET("/audit-logs", auditLogsHandler.List)
			admin.PUT("/salon/:salon_id/approve", adminHandler.ApproveSalon)
			admin.PUT("/salon/:salon_id/reject", adminHandler.RejectSalon)
		}

		// ------------------------------
		// AI STYLE PREVIEWS
		// ------------------------------
		ai := api.Group("/ai")
		{
			ai.GET("/health", styleHandler.Health)

			limited := ai.Group("/")
			limited.Use(aiLimiter.Handler())
			{
				limited.POST("/analyze_face", styleHandler.AnalyzeFace)
				limited.POST("/generate_hairstyle", styleHandler.GenerateHairstyle)
				limited.POST("/modify_hairstyle", styleHandler.ModifyHairstyle)
			}
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", meHandler.Bookings)
			secured.POST("/me/salons", salonHandler.Register)
		}
	}
}
