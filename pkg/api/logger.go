package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func NewLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		requestID := uuid.NewString()
		c.Set("X-Request-Id", requestID)

		requestLogger := logger.With().Str("requestId", requestID).Logger()
		c.SetUserContext(requestLogger.WithContext(c.UserContext()))

		err := c.Next()

		msg := "HTTP Request"
		if err != nil {
			msg = err.Error()

			// the status is final only once the error handler has run
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		code := c.Response().StatusCode()

		ipAddress := c.IP()

		if cloudflareConnectingIP := c.Get("CF-Connecting-IP", ""); cloudflareConnectingIP != "" {
			ipAddress = cloudflareConnectingIP
		}

		requestLogger = requestLogger.With().
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", ipAddress).
			Str("latency", time.Since(startTime).String()).
			Str("user-agent", c.Get(fiber.HeaderUserAgent)).
			Logger()

		switch {
		case code >= fiber.StatusBadRequest && code < fiber.StatusInternalServerError:
			requestLogger.Warn().Msg(msg)
		case code >= fiber.StatusInternalServerError:
			requestLogger.Error().Msg(msg)
		default:
			requestLogger.Info().Msg(msg)
		}

		return nil
	}
}
