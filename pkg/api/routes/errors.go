package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
)

// sendLookupError maps invalid input to 400 and every backend or projection failure to 502.
func sendLookupError(c *fiber.Ctx, err error) error {
	var invalidInput *query.InvalidInputError
	if errors.As(err, &invalidInput) {
		c.Status(fiber.StatusBadRequest)
	} else {
		c.Status(fiber.StatusBadGateway)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendRawJSON(c *fiber.Ctx, payload []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(payload)
}
