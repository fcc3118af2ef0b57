package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/config"
	"linku/linku-api/internal/handlers"
	"linku/linku-api/internal/repositories"
	"linku/linku-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	initLogging(cfg)
	log.Info().Msg("config loaded")

	// Initialize repositories. The catalog is required; the service
	// cannot score against nothing.
	catalogRepo, err := repositories.NewCatalogRepository(cfg.Data.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load program catalog")
	}
	log.Info().Int("programs", catalogRepo.Count()).Msg("program catalog loaded")

	offerRepo := repositories.NewOfferRepository(cfg.Data.AdmissionsCSV)
	mentorRepo := repositories.NewMentorRepository(cfg.Data.MentorsPath)

	// Initialize services
	matcherService := services.NewMatcherService(catalogRepo)
	chanceService := services.NewChanceService(offerRepo)
	mentorService := services.NewMentorService(mentorRepo)
	reportService := services.NewReportService()
	log.Info().Msg("services initialized")

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(matcherService, cfg.Match.DefaultResults, cfg.Match.FullResults)
	chanceHandler := handlers.NewChanceHandler(chanceService)
	mentorHandler := handlers.NewMentorHandler(mentorService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LinkU API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Static assets
	app.Static("/static", cfg.Data.StaticDir)

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/full-matches", matchHandler.HandleFullMatches)
	api.Post("/chance-me", chanceHandler.HandleChanceMe)
	api.Post("/download-pdf", reportHandler.HandleDownloadPDF)
	api.Get("/mentors", mentorHandler.HandleAllMentors)
	api.Get("/program-mentors/*", mentorHandler.HandleProgramMentors)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "LinkU API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/match",
				"POST /api/full-matches",
				"POST /api/chance-me",
				"POST /api/download-pdf",
				"GET /api/mentors",
				"GET /api/program-mentors/:programKey",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func initLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if cfg.Server.Env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
