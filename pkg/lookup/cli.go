package lookup

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/global"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON   = "json"
	formatPretty = "pretty"
)

func setupAggregator(c *cli.Context) (*dataaggregator.Aggregator, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	return global.Setup(cfg), nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Query the SBB backend directly from the terminal",
		Subcommands: []*cli.Command{
			{
				Name:      "places",
				Usage:     "list the places matching each name",
				ArgsUsage: "<name>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: formatJSON,
						Usage: "output format, json or pretty",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("at least one place name is required")
					}

					aggregator, err := setupAggregator(c)
					if err != nil {
						return err
					}

					ctx := log.Logger.WithContext(c.Context)

					results, err := LookupPlaces(ctx, aggregator, query.PlacesBatch{Values: c.Args().Slice()})
					if err != nil {
						return err
					}

					return writePlaces(c.App.Writer, results, c.String("format"))
				},
			},
			{
				Name:  "trips",
				Usage: "list the trips between two places",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin place ID or name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination place ID or name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "travel date as YYYY-MM-DD, today when empty",
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "departure time as HH:MM, now when empty",
					},
					&cli.StringFlag{
						Name:  "cursor",
						Usage: "pagination cursor from a previous listing",
					},
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "print one line per trip followed by the pagination cursors",
					},
				},
				Action: func(c *cli.Context) error {
					aggregator, err := setupAggregator(c)
					if err != nil {
						return err
					}

					ctx := log.Logger.WithContext(c.Context)

					tripsQuery := query.Trips{
						From:         c.String("from"),
						To:           c.String("to"),
						Date:         c.String("date"),
						Time:         c.String("time"),
						PagingCursor: c.String("cursor"),
					}

					if !c.Bool("summary") {
						trips, err := dataaggregator.Lookup[ctdf.RawTrips](ctx, aggregator, tripsQuery)
						if err != nil {
							return err
						}

						_, err = fmt.Fprintln(c.App.Writer, trips.String())
						return err
					}

					page, err := dataaggregator.Lookup[*ctdf.TripsPage](ctx, aggregator, query.TripsPage{Trips: tripsQuery})
					if err != nil {
						return err
					}

					return writeTripSummaries(c.App.Writer, page)
				},
			},
		},
	}
}
