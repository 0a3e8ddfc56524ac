package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// requestLogger attaches a request ID and logs one structured line per
// request, leveled by the response status.
func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals("requestid", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		entry := log.Info()
		switch {
		case err != nil || status >= 500:
			entry = log.Error()
		case status >= 400:
			entry = log.Warn()
		}
		entry.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("uri", c.OriginalURL()).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.IP()).
			Err(err).
			Msg("request completed")

		return err
	}
}
