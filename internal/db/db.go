package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/config"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.TimeRecord{},
		&models.EmployeeStatus{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Como mucho un fichaje abierto por usuario. AutoMigrate no sabe
	// expresar índices parciales, así que va a mano.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uix_time_records_open
        ON time_records (user_id)
        WHERE check_out IS NULL
    `)

	return db
}
