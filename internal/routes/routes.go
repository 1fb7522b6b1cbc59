package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/audit"
	"github.com/veloura/salon-scheduler/internal/cache"
	"github.com/veloura/salon-scheduler/internal/config"
	"github.com/veloura/salon-scheduler/internal/events"
	"github.com/veloura/salon-scheduler/internal/handlers"
	infraRepo "github.com/veloura/salon-scheduler/internal/infra/repository"
	"github.com/veloura/salon-scheduler/internal/middleware"
	"github.com/veloura/salon-scheduler/internal/models"
	"github.com/veloura/salon-scheduler/internal/notify"
	ucAppointment "github.com/veloura/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availabilityCache *cache.Cache,
	publisher events.Publisher,
	loc *time.Location,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifyStore := notify.NewStore(db)
	notifier := notify.NewDispatcher(notifyStore)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		publisher,
		loc,
	)

	editAppointmentUC := ucAppointment.NewEditAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		publisher,
		loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
		publisher,
	)

	assignStaffUC := ucAppointment.NewAssignStaff(
		appointmentRepo,
		notifier,
		auditDispatcher,
		publisher,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		notifier,
		auditDispatcher,
		publisher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
		loc,
	)

	listClientAppointmentsUC := ucAppointment.NewListClientAppointments(appointmentRepo)
	listAllAppointmentsUC := ucAppointment.NewListAllAppointments(appointmentRepo)
	listStaffScheduleUC := ucAppointment.NewListStaffSchedule(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	workLogHandler := handlers.NewWorkLogHandler(db, loc)
	notificationHandler := handlers.NewNotificationHandler(notifyStore)
	announcementHandler := handlers.NewAnnouncementHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		editAppointmentUC,
		cancelAppointmentUC,
		listClientAppointmentsUC,
		availabilityUC,
	)

	staffHandler := handlers.NewStaffHandler(
		listStaffScheduleUC,
		updateStatusUC,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		assignStaffUC,
		cancelAppointmentUC,
		listAllAppointmentsUC,
		auditDispatcher,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.ListActive)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/announcements", announcementHandler.List)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET(
				"/availability/:staffId/:serviceId",
				appointmentHandler.Availability,
			)

			// ------------------------------
			// CLIENT BOOKINGS
			// ------------------------------
			client := secured.Group("/me/appointments")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("", appointmentHandler.Create)
				client.GET("", appointmentHandler.ListMine)
				client.PATCH("/:id", appointmentHandler.Edit)
				client.DELETE("/:id", appointmentHandler.Cancel)
			}

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/staff")
			staff.Use(middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
			{
				staff.GET("/schedule", staffHandler.Schedule)
				staff.PATCH("/appointments/:id/status", staffHandler.UpdateStatus)

				staff.GET("/working-hours", workingHoursHandler.Get)
				staff.PUT("/working-hours", workingHoursHandler.Put)

				staff.POST("/worklog/check-in", workLogHandler.CheckIn)
				staff.POST("/worklog/check-out", workLogHandler.CheckOut)
				staff.GET("/worklog", workLogHandler.List)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.PATCH("/appointments/:id/assign", adminHandler.AssignStaff)
				admin.DELETE("/appointments/:id", adminHandler.DeleteAppointment)

				admin.GET("/services", serviceHandler.ListAll)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/users", adminHandler.CreateUser)
				admin.PATCH("/users/:id/deactivate", adminHandler.DeactivateUser)

				admin.POST("/announcements", announcementHandler.Create)
				admin.PATCH("/announcements/:id", announcementHandler.Update)
				admin.DELETE("/announcements/:id", announcementHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
