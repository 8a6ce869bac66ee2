package handler

import (
	"github.com/gofiber/fiber/v2"
	"medical-barcode-api/catalog"
	"medical-barcode-api/helper"
)

const ServiceName = "Medical Barcode Generator"

// Version reported by Home, set once at startup.
var Version = helper.DefaultVersion

// Home godoc
// @Summary      API index
// @Description  Welcome message with links to the documentation, examples and health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":       "Welcome to the Medical Barcode Generator API",
		"documentation": "/docs",
		"examples":      "/examples",
		"health":        "/health",
		"version":       Version,
	})
}

// HealthCheck godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "service": ServiceName})
}

// GetExamples godoc
// @Summary      Example requests
// @Description  Example URLs for every generation endpoint
// @Tags         meta
// @Produce      json
// @Success      200  {object}  catalog.Catalog
// @Router       /examples [get]
func GetExamples(c *fiber.Ctx) error {
	return c.JSON(catalog.Get())
}
