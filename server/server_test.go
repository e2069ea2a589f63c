package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c := catalogue.New()
	c.AddStop("Biryulyovo Zapadnoye", catalogue.Coordinates{Lat: 55.574371, Lng: 37.6517})
	c.AddStop("Universam", catalogue.Coordinates{Lat: 55.587655, Lng: 37.645687})
	c.AddStop("Prazhskaya", catalogue.Coordinates{Lat: 55.611678, Lng: 37.603831})
	c.SetDistance("Biryulyovo Zapadnoye", "Universam", 2400)
	require.NoError(t, c.AddBus("828", []string{"Biryulyovo Zapadnoye", "Universam", "Biryulyovo Zapadnoye"}, true))
	require.NoError(t, c.AddBus("47", []string{"Universam", "Prazhskaya"}, false))
	return New(c, config.ServerConfig{Port: 16181, AllowedOrigins: []string{"http://localhost:5173"}})
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)
	rec, body := get(t, s.Routes(), "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, s.LoadID().String(), body["load_id"])
	assert.Equal(t, 3.0, body["stops"])
	assert.Equal(t, 2.0, body["buses"])
	assert.Equal(t, 1.0, body["distances"])
}

func TestServer_BusList(t *testing.T) {
	rec, body := get(t, newTestServer(t).Routes(), "/api/buses")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"47", "828"}, body["buses"])
}

func TestServer_StopList(t *testing.T) {
	rec, body := get(t, newTestServer(t).Routes(), "/api/stops")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"Biryulyovo Zapadnoye", "Prazhskaya", "Universam"}, body["stops"])
}

func TestServer_BusUnencodable(t *testing.T) {
	s := newTestServer(t)
	s.cat.AddStop("Nowhere", catalogue.Coordinates{Lat: math.NaN()})
	require.NoError(t, s.cat.AddBus("nan", []string{"Nowhere", "Universam"}, false))

	rec, body := get(t, s.Routes(), "/api/buses/nan")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "response could not be encoded", body["error"])
}

func TestServer_Bus(t *testing.T) {
	h := newTestServer(t).Routes()

	rec, body := get(t, h, "/api/buses/828")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["found"])
	bus := body["bus"].(map[string]any)
	assert.Equal(t, 3.0, bus["stop_count"])
	assert.Equal(t, 2.0, bus["unique_stop_count"])
	assert.Equal(t, 4800.0, bus["route_length"])

	rec, body = get(t, h, "/api/buses/751")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["found"])
}

func TestServer_Stop(t *testing.T) {
	h := newTestServer(t).Routes()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBuses  []any
	}{
		{name: "escaped name", path: "/api/stops/Biryulyovo%20Zapadnoye", wantStatus: http.StatusOK, wantBuses: []any{"828"}},
		{name: "several buses", path: "/api/stops/Universam", wantStatus: http.StatusOK, wantBuses: []any{"47", "828"}},
		{name: "unknown", path: "/api/stops/Samara", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(t, h, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBuses != nil {
				assert.Equal(t, tt.wantBuses, body["buses"])
			}
		})
	}
}

func TestServer_StopWithoutBuses(t *testing.T) {
	s := newTestServer(t)
	s.cat.AddStop("Lonely", catalogue.Coordinates{})

	rec, body := get(t, s.Routes(), "/api/stops/Lonely")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["buses"])
}

func TestServer_RejectsOverlongName(t *testing.T) {
	rec, body := get(t, newTestServer(t).Routes(), "/api/stops/"+strings.Repeat("x", 300))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid name", body["error"])
}

func TestServer_CORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	newTestServer(t).Routes().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
