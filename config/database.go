package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"ratecard/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) (string, error) {
	prefix := strings.ToUpper(env)
	switch prefix {
	case "DEV", "QC", "PROD":
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	user := os.Getenv(prefix + "_DB_USER")
	password := os.Getenv(prefix + "_DB_PASSWORD")
	host := os.Getenv(prefix + "_DB_HOST")
	port := os.Getenv(prefix + "_DB_PORT")
	name := os.Getenv(prefix + "_DB_NAME")
	sslmode := GetEnvDefault(prefix+"_DB_SSLMODE", "require")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode), nil
}

func ConnectDB(env string) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if err := db.AutoMigrate(&models.Property{}, &models.DateOverride{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	log.Println("Successfully connected to db")
	DB = db
	return db, nil
}
