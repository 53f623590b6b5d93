package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/global"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/query"
	"github.com/urfave/cli/v2"
)

const tripsBody = `{"data":{"trips":{"trips":[{"id":"T1","valid":true,"isBuyable":true,
"summary":{"departure":{"time":"2024-05-01T08:32:00+02:00","quayChanged":false},
"arrival":{"time":"2024-05-01T10:15:00+02:00","quayChanged":false},
"firstStopPlace":{"id":"8501008","name":"Genève","__typename":"StopPlace"},
"lastStopPlace":{"id":"8507000","name":"Bern","__typename":"StopPlace"},"international":false},
"legs":[{"__typename":"PTRideLeg","id":"L1","serviceJourney":{"id":"SJ1","serviceProducts":[{"name":"IC 1"}]}},
{"__typename":"PTConnectionLeg","id":"L2"},
{"__typename":"PTRideLeg","id":"L3","serviceJourney":{"id":"SJ2","serviceProducts":[{"name":"IC 1"},{"line":"S3"}]}}]}],
"paginationCursor":{"previous":"PREV","next":"NEXT"}}}}`

// placesBackend answers GetPlaces with one place named after the requested value.
func placesBackend(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		var request struct {
			OperationName string `json:"operationName"`
			Variables     struct {
				Input struct {
					Value string `json:"value"`
				} `json:"input"`
			} `json:"variables"`
		}
		_ = json.Unmarshal(raw, &request)

		if request.OperationName != "GetPlaces" {
			_, _ = w.Write([]byte(tripsBody))
			return
		}

		if request.Variables.Input.Value == "Nowhere" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = fmt.Fprintf(w, `{"data":{"places":[{"id":"id-%[1]s","name":"%[1]s","__typename":"StopPlace"}]}}`, request.Variables.Input.Value)
	}))
	t.Cleanup(server.Close)

	return server
}

func testConfig(server *httptest.Server) config.Config {
	cfg := config.Default()
	cfg.Backend.Endpoint = server.URL

	return cfg
}

func TestLookupPlaces_KeepsInputOrder(t *testing.T) {
	aggregator := global.Setup(testConfig(placesBackend(t)))
	names := []string{"Genève", "Bern", "Basel", "Lugano", "Chur", "Zürich"}

	results, err := LookupPlaces(context.Background(), aggregator, query.PlacesBatch{Values: names})
	require.NoError(t, err)
	require.Len(t, results, len(names))

	for i, result := range results {
		assert.Equal(t, names[i], result.Value)
		assert.JSONEq(t, fmt.Sprintf(`[{"id":"id-%[1]s","name":"%[1]s","__typename":"StopPlace"}]`, names[i]), string(result.Places))
	}
}

func TestLookupPlaces_Errors(t *testing.T) {
	aggregator := global.Setup(testConfig(placesBackend(t)))

	_, err := LookupPlaces(context.Background(), aggregator, query.PlacesBatch{})
	var invalidInput *query.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)

	_, err = LookupPlaces(context.Background(), aggregator, query.PlacesBatch{Values: []string{"Bern", ""}})
	assert.ErrorAs(t, err, &invalidInput)

	_, err = LookupPlaces(context.Background(), aggregator, query.PlacesBatch{Values: []string{"Bern", "Nowhere"}})
	assert.ErrorContains(t, err, `places for "Nowhere"`)
}

func TestWritePlaces(t *testing.T) {
	results := []NamedPlaces{
		{Value: "Bern", Places: json.RawMessage(`[{"id":"8507000","name":"Bern","__typename":"StopPlace"}]`)},
	}

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writePlaces(&out, results, formatJSON))
		assert.JSONEq(t, `[{"value":"Bern","places":[{"id":"8507000","name":"Bern","__typename":"StopPlace"}]}]`, out.String())
	})

	t.Run("pretty", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writePlaces(&out, results, formatPretty))
		assert.Contains(t, out.String(), "Bern:\n")
		assert.Contains(t, out.String(), `"8507000"`)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writePlaces(io.Discard, results, "xml"))
	})
}

func TestWriteTripSummaries(t *testing.T) {
	var envelope struct {
		Data struct {
			Trips ctdf.TripsPage `json:"trips"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(tripsBody), &envelope))

	var out bytes.Buffer
	require.NoError(t, writeTripSummaries(&out, &envelope.Data.Trips))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "08:32 -> 10:15")
	assert.Contains(t, string(lines[0]), "IC 1, S3")
	assert.Contains(t, string(lines[0]), "(Genève -> Bern)")
	assert.Equal(t, "previous cursor: PREV", string(lines[1]))
	assert.Equal(t, "next cursor: NEXT", string(lines[2]))
}

func TestWriteTripSummaries_UndecodableTrips(t *testing.T) {
	page := &ctdf.TripsPage{Trips: ctdf.RawTrips(`{"not":"an array"}`)}

	assert.Error(t, writeTripSummaries(io.Discard, page))
}

func TestSummariseTrip_EndpointsFromLegs(t *testing.T) {
	var trip ctdf.Trip
	require.NoError(t, json.Unmarshal([]byte(`{"id":"T2","legs":[
{"__typename":"AccessLeg","start":{"id":"a","name":"Home"},"end":{"id":"b","name":"Lausanne"}},
{"__typename":"PTRideLeg","start":{"id":"b","name":"Lausanne"},"end":{"id":"c","name":"Sion"}}]}`), &trip))

	assert.Contains(t, summariseTrip(trip), "(Home -> Sion)")
}

func TestSummariseTrip_WithoutSummary(t *testing.T) {
	line := summariseTrip(ctdf.Trip{ID: "a-very-long-trip-identifier-from-the-backend"})

	assert.Contains(t, line, "a-very-long-trip-identi…")
	assert.NotContains(t, line, "(")
}

func runCLI(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  endpoint: "+server.URL+"\n"), 0o600))

	var out bytes.Buffer
	app := &cli.App{
		Name:   "sbb-mcp",
		Writer: &out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{RegisterCLI()},
	}

	err := app.Run(append([]string{"sbb-mcp", "--config", path, "lookup"}, args...))

	return out.String(), err
}

func TestCLI_Places(t *testing.T) {
	out, err := runCLI(t, placesBackend(t), "places", "Genève", "Bern")
	require.NoError(t, err)

	var results []NamedPlaces
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Genève", results[0].Value)
	assert.Equal(t, "Bern", results[1].Value)
}

func TestCLI_PlacesRequiresName(t *testing.T) {
	_, err := runCLI(t, placesBackend(t), "places")
	assert.Error(t, err)
}

func TestCLI_Trips(t *testing.T) {
	server := placesBackend(t)

	t.Run("raw", func(t *testing.T) {
		out, err := runCLI(t, server, "trips", "--from", "Genève", "--to", "Bern", "--date", "2024-05-01", "--time", "08:30")
		require.NoError(t, err)

		var trips []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &trips))
		require.Len(t, trips, 1)
		assert.Equal(t, "T1", trips[0]["id"])
	})

	t.Run("summary", func(t *testing.T) {
		out, err := runCLI(t, server, "trips", "--from", "Genève", "--to", "Bern", "--summary")
		require.NoError(t, err)

		assert.Contains(t, out, "08:32 -> 10:15")
		assert.Contains(t, out, "next cursor: NEXT")
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := runCLI(t, server, "trips", "--from", "Genève", "--to", "Bern", "--date", "tomorrow")

		var invalidInput *query.InvalidInputError
		assert.ErrorAs(t, err, &invalidInput)
	})
}
