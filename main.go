package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"datasync-service/internal/config"
	"datasync-service/internal/middleware"
	"datasync-service/internal/service"
	"datasync-service/internal/store"
	transport "datasync-service/internal/transport/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var startTime time.Time

func main() {
	startTime = time.Now()
	cfg := config.Load()

	db, err := store.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to DB: %v", err)
	}
	st, err := store.New(db)
	if err != nil {
		log.Fatalf("❌ Failed to migrate store: %v", err)
	}
	log.Printf("✅ [STORE] Record store ready (data tables: %s)", strings.Join(cfg.DataTables, ", "))

	coordinator := service.NewCoordinator(st, cfg.DataTables, cfg.LockWait)
	handler := transport.NewHandler(coordinator)
	log.Println("✅ [SERVICE] Coordinator & Handler initialized")

	app := fiber.New(fiber.Config{
		AppName:      "datasync-service",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
		MaxAge:       86400,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))

	app.Post("/v1/sync", handler.Sync)
	app.Get("/v1/sync", handler.GetData)
	log.Println("✅ [ROUTES] Registered sync routes: POST /v1/sync, GET /v1/sync")

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Round(time.Second)
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     "datasync-service",
			"uptime":      uptime.String(),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"data_tables": cfg.DataTables,
		})
	})
	log.Println("✅ [ROUTES] Registered /health")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 [SHUTDOWN] Graceful shutdown initiated...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ [SHUTDOWN] Error: %v", err)
		}
	}()

	log.Printf("🚀 datasync-service starting...")
	log.Printf("   🔗 Listening on port: %s", cfg.ServerPort)
	log.Printf("   📋 Data tables: %s", strings.Join(cfg.DataTables, ", "))
	log.Printf("   🔒 Write-lock wait: %v", cfg.LockWait)
	log.Println("✅ Server ready.")

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ [STARTUP] Server failed to start: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var errMsg string
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		errMsg = e.Message
	} else {
		errMsg = err.Error()
	}
	log.Printf("🔥 [ERROR] [%d] %s %s → %v | IP=%s | ReqID=%v",
		code,
		c.Method(),
		c.Path(),
		errMsg,
		c.IP(),
		c.Locals("request_id"),
	)
	return c.Status(code).JSON(fiber.Map{
		"error":      "something went wrong",
		"request_id": c.Locals("request_id"),
	})
}
