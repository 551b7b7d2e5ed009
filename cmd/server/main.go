// Package main is the entry point for the wallet backend. It initializes
// the database and cache, wires the routes and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dwallet/internal/config"
	"dwallet/internal/repositories"
	"dwallet/internal/repositories/cache"
	"dwallet/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

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
		MaxIdleConns:    config.GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    config.GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("connected to database")

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewCacheService(redisClient, 24*time.Hour)
	defer cacheService.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT", 100),
		Expiration: time.Minute,
	}))

	routes.SetupRoutes(app, db, cacheService)

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	addr := ":" + config.GetEnv("PORT", "8080")
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
