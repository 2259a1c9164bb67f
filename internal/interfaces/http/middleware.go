package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

// HeaderRequestID cabecera de correlación devuelta en cada respuesta.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra cada petición con su request_id, status y duración.
// Respeta un X-Request-ID entrante; si no hay, genera uno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("http request")
		return err
	}
}
