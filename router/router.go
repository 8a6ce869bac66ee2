package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "medical-barcode-api/docs"
	"medical-barcode-api/handler"
	"medical-barcode-api/middleware"
)

// SetupRoutes setup router api
func SetupRoutes(app *fiber.App) {
	app.Use(middleware.Metrics())

	app.Get("/", handler.Home)
	app.Get("/health", handler.HealthCheck)
	app.Get("/examples", handler.GetExamples)

	app.Get("/docs/*", swagger.New(swagger.Config{
		DocExpansion: "list",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	//region Generate
	generate := app.Group("/generate")
	generate.Get("/code128", handler.GenerateCode128)
	generate.Get("/laetus", handler.GenerateLaetus)
	generate.Get("/swiss-medical", handler.GenerateSwissMedical)
	generate.Get("/ean13", handler.GenerateEAN13)
	//endregion
}
