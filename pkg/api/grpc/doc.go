// Package grpc serves the standard grpc.health.v1 liveness protocol, so
// orchestrators that probe over gRPC can check the service alongside GET /health.
package grpc
