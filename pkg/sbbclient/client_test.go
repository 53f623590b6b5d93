package sbbclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/sbb-mcp/pkg/catalog"
)

func TestClient_ExecuteSendsRequest(t *testing.T) {
	var captured struct {
		method  string
		headers http.Header
		body    map[string]json.RawMessage
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.headers = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Set-Cookie", "session=abc")
		_, _ = w.Write([]byte(`{"data":{"places":[]}}`))
	}))
	defer server.Close()

	client := New(server.URL, "fr-FR")
	variables := catalog.NewPlacesVariables("Genève", "FR")

	body, err := client.Execute(context.Background(), catalog.GetPlaces, catalog.OperationGetPlaces, variables)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"places":[]}}`, string(body))

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "application/json", captured.headers.Get("Content-Type"))
	assert.Equal(t, "fr-FR", captured.headers.Get("Accept-Language"))
	assert.JSONEq(t, `"GetPlaces"`, string(captured.body["operationName"]))
	assert.JSONEq(t, `{"input":{"type":"NAME","value":"Genève"},"language":"FR"}`, string(captured.body["variables"]))

	var query string
	require.NoError(t, json.Unmarshal(captured.body["query"], &query))
	assert.Equal(t, catalog.GetPlaces.Query, query)
}

func TestClient_ExecuteIsStateless(t *testing.T) {
	var cookies atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.Cookies()) > 0 {
			cookies.Add(1)
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, "fr-FR")
	for i := 0; i < 3; i++ {
		_, err := client.Execute(context.Background(), catalog.GetPlaces, catalog.OperationGetPlaces, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(0), cookies.Load())
}

func TestClient_ExecuteFailures(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"data":null}`, expectStatus: 500},
		{name: "not found", status: http.StatusNotFound, body: `nope`, expectStatus: 404},
		{name: "html body", status: http.StatusOK, body: `<html>maintenance</html>`, expectStatus: 200},
		{name: "empty body", status: http.StatusOK, body: ``, expectStatus: 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			body, err := New(server.URL, "fr-FR").Execute(context.Background(), catalog.GetTrips, catalog.OperationGetTrips, nil)
			assert.Nil(t, body)

			var backendError *BackendError
			require.True(t, errors.As(err, &backendError), "expected BackendError, got %v", err)
			assert.Equal(t, tc.expectStatus, backendError.StatusCode)
			assert.Equal(t, "getTrips", backendError.Operation)
			assert.Equal(t, int32(1), requests.Load(), "no retries")
		})
	}
}

func TestClient_ExecuteNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := New(endpoint, "fr-FR").Execute(context.Background(), catalog.GetPlaces, catalog.OperationGetPlaces, nil)

	var backendError *BackendError
	require.ErrorAs(t, err, &backendError)
	assert.Zero(t, backendError.StatusCode)
	assert.Contains(t, err.Error(), "send request")
}

func TestClient_ExecuteIgnoresCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := New(server.URL, "fr-FR").Execute(ctx, catalog.GetPlaces, catalog.OperationGetPlaces, nil)
		done <- err
	}()

	cancel()
	close(release)

	assert.NoError(t, <-done)
}
