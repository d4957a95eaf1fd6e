package http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log_internal "reservation-dashboard/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "reservation-dashboard",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())

	return app
}

// StartHttpServer blocks until SIGINT/SIGTERM, then shuts the app down within shutdownTimeout.
func StartHttpServer(app *fiber.App, port string, shutdownTimeout time.Duration, onShutdown ...func()) {
	logger := log_internal.GetLogger()
	ctx := context.Background()

	go func() {
		addr := fmt.Sprintf(":%s", port)
		logger.Ctx(ctx).Info(fmt.Sprintf("http server listening on %s", addr))
		if err := app.Listen(addr); err != nil {
			logger.Ctx(ctx).Fatal(fmt.Sprintf("error start http server: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Ctx(ctx).Info("shutdown signal received, shutting down http server")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Ctx(ctx).Error(fmt.Sprintf("error shutdown http server: %v", err))
	}

	for _, fn := range onShutdown {
		fn()
	}

	logger.Ctx(ctx).Info("http server stopped")
}
