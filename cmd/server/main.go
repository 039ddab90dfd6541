package main

import (
	"database/sql"
	"log"

	"github.com/KarenButarello/CRUD-Hotel/internal/application"
	"github.com/KarenButarello/CRUD-Hotel/internal/config"
	"github.com/KarenButarello/CRUD-Hotel/internal/email"
	"github.com/KarenButarello/CRUD-Hotel/internal/infrastructure/repository"
	handlers "github.com/KarenButarello/CRUD-Hotel/internal/interfaces/http"
	services "github.com/KarenButarello/CRUD-Hotel/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		zapLogger.Fatal("pinging database", zap.Error(err))
	}

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	// Email client is optional; reservation mail is best effort.
	var emailClient *email.Client
	if cfg.EmailConfigured() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			zapLogger.Warn("email client initialization failed", zap.Error(err))
			emailClient = nil
		}
	}

	// Image storage is optional too.
	var s3Service *services.S3Service
	if cfg.S3Bucket != "" {
		s3Service, err = services.NewS3Service(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			zapLogger.Warn("S3 service initialization failed", zap.Error(err))
			s3Service = nil
		}
	}

	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	guestService := application.NewGuestService(guestRepo)
	guestHandler := handlers.NewGuestHandler(guestService)

	roomService := application.NewRoomService(roomRepo)
	roomHandler := handlers.NewRoomHandler(roomService, s3Service)

	reservationService := application.NewReservationService(reservationRepo, roomRepo, guestRepo, emailClient, zapLogger)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	guests := app.Group("/guests")
	guests.Get("/", guestHandler.ListAll)
	guests.Get("/name/:name", guestHandler.GetByName)
	guests.Get("/:id", guestHandler.GetByID)
	guests.Post("/", guestHandler.Create)
	guests.Put("/:id", guestHandler.Update)
	guests.Delete("/:id", guestHandler.Delete)

	rooms := app.Group("/rooms")
	rooms.Get("/", roomHandler.ListAll)
	rooms.Get("/available", roomHandler.ListAvailable)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Post("/", roomHandler.Create)
	rooms.Post("/:id/images", roomHandler.UploadImage)
	rooms.Get("/:id/images", roomHandler.ListImages)

	reservations := app.Group("/reservations")
	reservations.Get("/", reservationHandler.List)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Post("/", reservationHandler.Create)
	reservations.Put("/:id/update", reservationHandler.Update)
	reservations.Delete("/:id/cancel", reservationHandler.Cancel)

	zapLogger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
