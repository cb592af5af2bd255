package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"ratecard/config"
	"ratecard/jobs"
	"ratecard/routes"
	"ratecard/services/logger"
	"ratecard/services/notification"
	"ratecard/services/overrides"
	"ratecard/utils"
)

// @title                      Ratecard API
// @version                    1.0
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	ctx := context.Background()

	app, err := config.InitApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Redis.Close()

	if app.Settings.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET rỗng, các API ghi sẽ luôn trả về 401")
	}

	var logOut io.Writer = os.Stderr
	if app.Settings.LogDir != "" {
		logFile, err := utils.OpenDailyLogFile(app.Settings.LogDir, time.Now())
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stderr, logFile)
	}

	overrideService := overrides.NewService(overrides.ServiceOptions{
		Store:    overrides.NewGormStore(app.DB),
		Cache:    overrides.NewRedisCache(app.Redis, app.Settings.CacheTTL),
		Logger:   logger.NewLogger(logOut, logger.ParseLevel(app.Settings.LogLevel)),
		Notifier: notification.NewMelodyService(app.Melody),
	})

	if err := jobs.InitCronJobs(app.Cron, overrideService, app.Settings.PurgeCron); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer app.Cron.Stop()

	config.InitWebSocket(app.Router, app.Melody)
	routes.SetupRoutes(app.Router, overrideService, app.Settings.JWTSecret)

	log.Println("Server starting on port " + app.Settings.Port + "...")
	if err := app.Router.Run(":" + app.Settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
