package transport

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// LedgerService is the service name health checks may ask about. The empty
// name reports the same status.
const LedgerService = "chainkeeper.Ledger"

// HealthHandler answers grpc health checks from the engine state.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	checker Checker
}

func NewHealthHandler(checker Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Check(_ context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", LedgerService:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}
	if !h.checker.Running() {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
