package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	"github.com/BruksfildServices01/timeclock/internal/config"
	dbpkg "github.com/BruksfildServices01/timeclock/internal/db"
	infraRepo "github.com/BruksfildServices01/timeclock/internal/infra/repository"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/routes"
	"github.com/BruksfildServices01/timeclock/internal/scheduler"
	"github.com/BruksfildServices01/timeclock/internal/session"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	blacklist := session.NewBlacklist(cfg)

	// El sweeper comparte repo y auditoría con la API.
	recordRepo := infraRepo.NewTimeRecordGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	clock := timezone.NewClock(cfg.Timezone)
	autoCloseUC := ucTimerecord.NewAutoClose(recordRepo, auditDispatcher, clock)

	cronRunner := scheduler.Start(cfg, autoCloseUC)
	defer cronRunner.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, blacklist, autoCloseUC)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
