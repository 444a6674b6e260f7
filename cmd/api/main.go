package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"atscv/cv-converter/internal/config"
	"atscv/cv-converter/internal/handlers"
	"atscv/cv-converter/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	fileStore := services.NewFileStore(cfg.Storage.ArtifactTTL, cfg.Storage.CleanupInterval)
	pdfParser := services.NewPDFParserService()
	renderer := services.NewPDFRendererService()
	zipper := services.NewZipService()
	gemini := services.NewGeminiService(cfg.Gemini.Model, float32(cfg.Gemini.Temperature))
	log.Println("✅ Services initialized successfully")

	// Initialize pipeline
	pipeline := services.NewPipelineService(pdfParser, gemini, renderer, zipper, fileStore)
	log.Println("✅ Pipeline initialized successfully")

	// Initialize worker
	worker := services.NewWorker(pipeline, cfg.Worker.Concurrency, cfg.Worker.QueueSize)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(pipeline, worker, cfg)
	downloadHandler := handlers.NewDownloadHandler(fileStore)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:           "ATS CV Converter API",
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Stream.Lifetime + 10*time.Second,
		BodyLimit:         int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler:      customErrorHandler,
		StreamRequestBody: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1/cv")

	api.Post("/generate-stream", generateHandler.HandleGenerateStream)
	api.Post("/generate", generateHandler.HandleGenerate)
	api.Get("/download", downloadHandler.HandleDownload)

	// Health check
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS CV Converter API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/cv/generate-stream",
				"POST /api/v1/cv/generate",
				"GET /api/v1/cv/download",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		fileStore.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
