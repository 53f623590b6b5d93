package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
)

func TripsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getTrips(c, aggregator)
	})
}

// getTrips answers with the bare trips array, or with trips and pagination cursor when
// includeCursor=true or a cursor is given.
func getTrips(c *fiber.Ctx, aggregator *dataaggregator.Aggregator) error {
	tripsQuery := query.Trips{
		From:         c.Query("from"),
		To:           c.Query("to"),
		Date:         c.Query("date"),
		Time:         c.Query("time"),
		PagingCursor: c.Query("cursor"),
	}

	if c.QueryBool("includeCursor") || tripsQuery.PagingCursor != "" {
		page, err := dataaggregator.Lookup[*ctdf.TripsPage](c.UserContext(), aggregator, query.TripsPage{Trips: tripsQuery})
		if err != nil {
			return sendLookupError(c, err)
		}

		return c.JSON(page)
	}

	trips, err := dataaggregator.Lookup[ctdf.RawTrips](c.UserContext(), aggregator, tripsQuery)
	if err != nil {
		return sendLookupError(c, err)
	}

	return sendRawJSON(c, trips)
}
