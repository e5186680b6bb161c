package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// Deps is what the routes need from main. DB is nil with in-memory
// storage, which leaves the audit log endpoint out.
type Deps struct {
	Config *config.Config
	Repo   domain.Repository
	Events domain.EventPublisher
	Clock  timezone.Clock
	Log    zerolog.Logger
	DB     *gorm.DB
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	cfg := d.Config
	policy := domain.ParseEmptySelectionPolicy(cfg.EmptySelection)
	runMode := domain.ParseRunMode(cfg.RunMode)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.Recovery(),
		middleware.CORSMiddleware(),
		middleware.Timeout(cfg.RequestTimeout),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	scheduleUC := ucBooking.NewGetSchedule(d.Repo)
	availabilityUC := ucBooking.NewGetAvailability(d.Repo, d.Clock)
	previewUC := ucBooking.NewPreviewRun(d.Repo, d.Clock, policy, runMode)
	createUC := ucBooking.NewCreateBooking(d.Repo, d.Events, d.Clock, policy, d.Log)
	cancelUC := ucBooking.NewCancelBookings(d.Repo, d.Events, d.Clock, d.Log)
	byDayUC := ucBooking.NewListBookingsByDay(d.Repo)
	byPhoneUC := ucBooking.NewListBookingsByPhone(d.Repo, d.Clock)
	servicesUC := ucBooking.NewListServices(d.Repo)
	professionalsUC := ucBooking.NewListProfessionalsByService(d.Repo)
	resolveClientUC := ucBooking.NewResolveClient(d.Repo)
	workingHoursUC := ucBooking.NewWorkingHours(d.Repo, d.Log)
	revenueUC := ucBooking.NewRevenueReport(d.Repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		scheduleUC,
		availabilityUC,
		previewUC,
		createUC,
		cancelUC,
		byDayUC,
	)
	publicHandler := handlers.NewPublicHandler(
		servicesUC,
		professionalsUC,
		resolveClientUC,
		createUC,
		byPhoneUC,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC)
	reportHandler := handlers.NewReportHandler(revenueUC)

	publicLimit := middleware.RateLimit(
		middleware.NewIPRateLimiter(cfg.PublicRateLimit, cfg.PublicRateBurst),
	)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public/:slug")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/bookings", publicLimit, publicHandler.ListBookingsByPhone)
			publicAPI.POST("/clients", publicLimit, publicHandler.ResolveClient)
			publicAPI.POST("/bookings", publicLimit, publicHandler.CreateBooking)
		}

		professionals := api.Group("/professionals/:id")
		{
			professionals.GET("/schedule", bookingHandler.Schedule)
			professionals.GET("/availability", bookingHandler.Availability)
			professionals.GET("/availability/run", bookingHandler.PreviewRun)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/professionals/:id/working-hours", workingHoursHandler.Get)
			admin.PUT("/professionals/:id/working-hours", workingHoursHandler.Update)
			admin.GET("/professionals/:id/bookings", bookingHandler.ListByDay)
			admin.GET("/reports/professionals", reportHandler.Professionals)

			if d.DB != nil {
				admin.GET("/audit-logs", handlers.NewAuditLogsHandler(d.DB).List)
			}
		}
	}
}
