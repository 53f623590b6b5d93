package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
)

func PlacesRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getPlaces(c, aggregator)
	})
}

func getPlaces(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	places, err := dataaggregator.Lookup[ctdf.RawPlaces](c.UserContext(), aggregator, query.Places{
		Value: c.Query("value"),
	})
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendRawJSON(c, places)
}
