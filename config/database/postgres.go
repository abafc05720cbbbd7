package database

import (
	"PlanMate/config/environment"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var PostgresClient *gorm.DB

// InitPostgres opens the catalog database connection and tunes the pool
func InitPostgres() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		environment.GetDBHost(),
		environment.GetDBUser(),
		environment.GetDBPassword(),
		environment.GetDBName(),
		environment.GetDBPort(),
		environment.GetDBSSLMode(),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	PostgresClient = db
	log.Println("Postgres catalog database initialized successfully")
}

// GetPostgresClient returns the shared catalog database handle
func GetPostgresClient() *gorm.DB {
	return PostgresClient
}
