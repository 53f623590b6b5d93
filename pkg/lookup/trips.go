package lookup

import (
	"fmt"
	"io"
	"strings"

	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/projection"
	"github.com/travigo/sbb-mcp/pkg/util"
)

const tripIDLength = 24

func writeTripSummaries(w io.Writer, page *ctdf.TripsPage) error {
	trips, err := projection.DecodeTrips(page.Trips)
	if err != nil {
		return err
	}

	for _, trip := range trips {
		fmt.Fprintln(w, summariseTrip(trip))
	}

	if page.PaginationCursor != nil {
		if page.PaginationCursor.Previous != nil {
			fmt.Fprintf(w, "previous cursor: %s\n", *page.PaginationCursor.Previous)
		}
		if page.PaginationCursor.Next != nil {
			fmt.Fprintf(w, "next cursor: %s\n", *page.PaginationCursor.Next)
		}
	}

	return nil
}

// summariseTrip renders one line: id, departure and arrival clock, products, endpoints.
// Endpoints come from the summary, or from the first and last leg when it has none.
func summariseTrip(trip ctdf.Trip) string {
	var departure, arrival, from, to string

	if summary := trip.Summary; summary != nil {
		if summary.Departure != nil && summary.Departure.Time != nil {
			departure = util.FormatClock(*summary.Departure.Time)
		}
		if summary.Arrival != nil && summary.Arrival.Time != nil {
			arrival = util.FormatClock(*summary.Arrival.Time)
		}
		if summary.FirstStopPlace != nil {
			from = summary.FirstStopPlace.Place.Name
		}
		if summary.LastStopPlace != nil {
			to = summary.LastStopPlace.Place.Name
		}
	}

	if len(trip.Legs) > 0 {
		if from == "" {
			if start := trip.Legs[0].Start(); start != nil {
				from = start.Name
			}
		}
		if to == "" {
			if end := trip.Legs[len(trip.Legs)-1].End(); end != nil {
				to = end.Name
			}
		}
	}

	var products []string
	for _, ride := range trip.RideLegs() {
		if ride.ServiceJourney == nil {
			continue
		}
		for _, product := range ride.ServiceJourney.ServiceProducts {
			products = append(products, product.Label())
		}
	}
	products = util.RemoveDuplicateStrings(products, nil)

	line := fmt.Sprintf("%-24s %5s -> %-5s", util.TrimString(trip.ID, tripIDLength), departure, arrival)
	if len(products) > 0 {
		line += "  " + strings.Join(products, ", ")
	}
	if from != "" || to != "" {
		line += fmt.Sprintf("  (%s -> %s)", from, to)
	}

	return line
}
