package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/helmet/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"medical-barcode-api/config"
	"medical-barcode-api/handler"
	"medical-barcode-api/helper"
	"medical-barcode-api/middleware"
	"medical-barcode-api/model"
	"medical-barcode-api/render"
	"medical-barcode-api/router"
	"medical-barcode-api/translation"
	"medical-barcode-api/validation"
)

const shutdownTimeout = 15 * time.Second

//go:generate swag init

// @title Medical Barcode Generator API
// @version 1.0.0
// @description Generate medical barcodes (Code128, Laetus, Swiss medical QR, EAN13) as PNG images
// @contact.name Support
// @basePath /
func main() {
	cfg := config.Load()
	cfg.SetupLogging()

	translation.InitTranslation()
	validation.RegisterValidations()
	render.Setup(render.Config{DPI: cfg.RenderDPI})
	handler.Version = helper.ResolveVersion(cfg.Version)

	app := fiber.New(fiber.Config{
		AppName:      handler.ServiceName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !cfg.IsProduction()}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CorsAllowOrigins}))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(model.ErrorResponse{Error: "Too many requests"})
		},
	}))

	router.SetupRoutes(app)

	go func() {
		logrus.Infof("starting %s %s on %s (%s)", handler.ServiceName, handler.Version, cfg.Addr(), cfg.Env)
		if err := app.Listen(cfg.Addr()); err != nil {
			logrus.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
}

// errorHandler answers errors not handled by a route, including recovered
// panics, with a JSON body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		logrus.Errorf("Error: %v, Request: %s %s, RequestId: %v", err, c.Method(), c.Path(), c.Locals("requestid"))
		message = fiber.ErrInternalServerError.Message
	}

	return c.Status(code).JSON(model.ErrorResponse{Error: message})
}
