package db

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salalivre/room-scheduler/internal/config"
	"github.com/salalivre/room-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	// A conexão é aberta via pgx para a DSN aceitar tanto URL quanto
	// keyword/value.
	sqlDB, err := sql.Open("pgx", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.SetupJoinTable(&models.Room{}, "TimeBlocks", &models.RoomTimeBlock{}); err != nil {
		log.Fatalf("failed to set up join table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.TimeBlock{},
		&models.Room{},
		&models.RoomTimeBlock{},
		&models.Appointment{},
		&models.Log{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedTimeBlocks(db)

	return db
}

// seedTimeBlocks garante as durações padrão quando a tabela está vazia.
func seedTimeBlocks(db *gorm.DB) {
	var count int64
	db.Model(&models.TimeBlock{}).Count(&count)
	if count > 0 {
		return
	}

	for _, minutes := range []int{30, 60, 90} {
		db.Create(&models.TimeBlock{Minutes: minutes})
	}
}
