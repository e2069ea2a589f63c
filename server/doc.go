// Package server exposes a fully loaded catalogue over read-only HTTP.
//
// Endpoints:
//   - GET /api/health
//   - GET /api/buses
//   - GET /api/buses/{name}
//   - GET /api/stops
//   - GET /api/stops/{name}
//
// The catalogue must not be mutated once the server is started.
package server
