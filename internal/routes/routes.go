package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	"github.com/BruksfildServices01/timeclock/internal/config"
	"github.com/BruksfildServices01/timeclock/internal/handlers"
	infraRepo "github.com/BruksfildServices01/timeclock/internal/infra/repository"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/session"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	ucStatus "github.com/BruksfildServices01/timeclock/internal/usecase/status"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	blacklist *session.Blacklist,
	autoCloseUC *ucTimerecord.AutoClose,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clock := timezone.NewClock(cfg.Timezone)
	recordRepo := infraRepo.NewTimeRecordGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	checkInUC := ucTimerecord.NewCheckIn(recordRepo, auditDispatcher, clock)
	checkOutUC := ucTimerecord.NewCheckOut(recordRepo, auditDispatcher, clock)
	openRecordUC := ucTimerecord.NewCurrentOpenRecord(recordRepo)
	weeklyUC := ucTimerecord.NewWeeklyAccrual(recordRepo)
	editRecordUC := ucTimerecord.NewEditRecord(recordRepo, auditDispatcher)
	deleteRecordUC := ucTimerecord.NewDeleteRecord(recordRepo, auditDispatcher)
	setStatusUC := ucStatus.NewSetStatus(recordRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, blacklist)
	meHandler := handlers.NewMeHandler(db)

	timeHandler := handlers.NewTimeHandler(
		db,
		checkInUC,
		checkOutUC,
		openRecordUC,
		weeklyUC,
		clock,
	)

	adminUserHandler := handlers.NewAdminUserHandler(db, auditDispatcher)
	adminRecordHandler := handlers.NewAdminRecordHandler(
		db,
		editRecordUC,
		deleteRecordUC,
		autoCloseUC,
	)
	statusHandler := handlers.NewStatusHandler(db, setStatusUC)
	exportHandler := handlers.NewExportHandler(db, clock)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, blacklist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// FICHAJES
			// ------------------------------
			secured.POST("/me/check-in", timeHandler.CheckIn)
			secured.POST("/me/check-out", timeHandler.CheckOut)
			secured.GET("/me/summary", timeHandler.Summary)
			secured.GET("/me/records", timeHandler.ListMyRecords)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminMiddleware(db))
			{
				admin.GET("/users", adminUserHandler.List)
				admin.POST("/users", adminUserHandler.Create)
				admin.PATCH("/users/:id", adminUserHandler.Update)
				admin.DELETE("/users/:id", adminUserHandler.Delete)

				admin.GET("/records", adminRecordHandler.List)
				admin.PATCH("/records/:id", adminRecordHandler.Edit)
				admin.DELETE("/records/:id", adminRecordHandler.Delete)
				admin.POST("/records/auto-close", adminRecordHandler.ManualAutoClose)
				admin.GET("/calendar", adminRecordHandler.Calendar)

				admin.POST("/statuses", statusHandler.Set)
				admin.GET("/statuses", statusHandler.List)

				admin.GET("/export/excel", exportHandler.Excel)
				admin.GET("/export/pdf", exportHandler.PDF)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
