// Seeds the admin account. Admin accounts never get a wallet.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"dwallet/internal/config"
	"dwallet/internal/models"
	"dwallet/internal/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	dsn := config.GetEnv("DATABASE_URL", fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_NAME", "dwallet"),
		config.GetEnv("DB_PORT", "5432"),
	))

	db, err := repositories.InitDB(repositories.DBConfig{
		DSN:             dsn,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	var existing models.User
	err = db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:       "Admin",
		Email:      adminEmail,
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		IsActive:   true,
		IsVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Admin account created successfully")
}
