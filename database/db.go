package database

import (
	"fmt"
	"log"
	"os"

	"diagnostik-backend/models"
	"diagnostik-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.EnvStr("DB_HOST", "db"),
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"),
		utils.EnvStr("DB_PORT", "5432"))

	// TranslateError turns the driver's unique-violation into gorm.ErrDuplicatedKey,
	// which the submission pipeline relies on for duplicate detection.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	DB = db
}

func AutoMigrate() {
	if err := DB.AutoMigrate(&models.Submission{}); err != nil {
		log.Fatalf("could not migrate database: %v", err)
	}
}
