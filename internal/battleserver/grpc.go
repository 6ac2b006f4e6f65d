package battleserver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// NewGRPCServer builds a gRPC server with the forecast and health services
// registered and request logging installed.
//
// Precondition: srv and logger must be non-nil.
// Postcondition: The health service reports SERVING for ServiceName and for
// the server as a whole.
func NewGRPCServer(srv *Server, logger *zap.Logger) *grpc.Server {
	gs := grpc.NewServer(grpc.UnaryInterceptor(UnaryLoggingInterceptor(logger)))
	RegisterForecastServiceServer(gs, srv)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return gs
}

// UnaryLoggingInterceptor logs every unary call with its method, status code
// and duration. Failed calls are logged at warn level.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("rpc handled", fields...)
		}
		return resp, err
	}
}
