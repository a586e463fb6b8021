// Package http provides the HTTP JSON API for the Happy Number service.
//
// The HTTP server exposes endpoints for:
//   - Service discovery (GET /)
//   - Liveness (GET /health)
//   - Happy number checks (GET /is_happy/:number)
//   - Prometheus metrics (GET /metrics, optional)
//
// A :number segment that is not an integer literal in int64 range is
// answered exactly like an unknown route, with a bare 404. Only well-formed
// integers reach the handler, which rejects values <= 0 with a 400.
package http
