package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/config"
	"github.com/TheoLaperrouse/SportChallenge/internal/handlers"
	"github.com/TheoLaperrouse/SportChallenge/internal/models"
	"github.com/TheoLaperrouse/SportChallenge/internal/notifier"
	"github.com/TheoLaperrouse/SportChallenge/internal/services"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Panic("failed to load config: ", err)
	}

	var db *gorm.DB
	if cfg.App.Database.Type == "sqlite" {
		db, err = gorm.Open(sqlite.Open(cfg.App.Database.SQLite.Path), &gorm.Config{})
		if err != nil {
			log.Panic("failed to connect to SQLite database: ", err)
		}
		log.Println("Connected to SQLite database")
	} else {
		pg := cfg.App.Database.Postgres
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pg.Host, pg.Port, pg.User, pg.Password, pg.DBName, pg.SSLMode)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Panic("failed to connect to PostgreSQL database: ", err)
		}
		log.Println("Connected to PostgreSQL database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Activity{},
		&models.DistanceSnapshot{},
		&models.Notification{},
	); err != nil {
		log.Panic("failed to run migrations: ", err)
	}

	var startDate *time.Time
	if s := cfg.App.Challenge.StartDate; s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			log.Panic("invalid challenge start_date: ", err)
		}
		startDate = &t
	}

	stravaClient := strava.NewClient(
		cfg.App.Strava.ClientID,
		cfg.App.Strava.ClientSecret,
		cfg.App.Strava.RedirectURI,
	)

	var announcer services.Announcer
	if cfg.App.Telegram.Token != "" {
		tg, err := notifier.NewTelegram(cfg.App.Telegram.Token, cfg.App.Telegram.ChatID)
		if err != nil {
			log.Panic("failed to start Telegram announcer: ", err)
		}
		announcer = tg
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	snapshots := services.NewSnapshotStore(db)
	overtakeService := services.NewOvertakeService(db, snapshots, rng, announcer)
	tokenService := services.NewTokenService(stravaClient)
	syncService := services.NewSyncService(db, stravaClient, tokenService, overtakeService,
		cfg.App.Sync.PageSize, time.Duration(cfg.App.Sync.UserDelaySeconds)*time.Second)
	userService := services.NewUserService(db)
	activityService := services.NewActivityService(db, startDate)
	statsService := services.NewStatsService(db, startDate)
	notificationService := services.NewNotificationService(db)

	if err := syncService.Start(cfg.App.Sync.Schedule); err != nil {
		log.Panic("failed to start sync scheduler: ", err)
	}
	defer syncService.Stop()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.Server.FrontendURL,
		AllowCredentials: true,
	}))

	h := handlers.New(stravaClient, userService, syncService, activityService,
		statsService, notificationService, cfg.App.Server.FrontendURL)
	h.Register(app)

	addr := fmt.Sprintf(":%d", cfg.App.Server.Port)
	log.Printf("Server running on http://localhost%s", addr)
	if err := app.Listen(addr); err != nil {
		log.Panic("server stopped: ", err)
	}
}
