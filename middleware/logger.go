package middleware

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

// Query strings carry patient and sample identifiers and are never logged.
const accessLogFormat = "${locals:requestid} ${status} - ${latency} ${method} ${path}\n"

// AccessLog writes one line per request through the standard logrus logger.
func AccessLog() fiber.Handler {
	return accessLog(logrus.StandardLogger().WriterLevel(logrus.InfoLevel))
}

func accessLog(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format: accessLogFormat,
		Output: out,
	})
}
