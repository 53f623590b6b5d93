package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/travigo/sbb-mcp/pkg/api/routes"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
)

func NewApp(aggregator *dataaggregator.Aggregator, logger zerolog.Logger) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger(logger))

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlacesRouter(group.Group("/places"), aggregator)
	routes.TripsRouter(group.Group("/trips"), aggregator)

	return webApp
}

func SetupServer(listen string, aggregator *dataaggregator.Aggregator, logger zerolog.Logger) error {
	return NewApp(aggregator, logger).Listen(listen)
}
