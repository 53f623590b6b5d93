package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/sbb-mcp/pkg/mcpserver"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    mcpserver.ServerName,
		"version": mcpserver.ServerVersion,
	})
}
