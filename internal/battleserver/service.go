// Package battleserver exposes forecast resolution over gRPC.
//
// The service carries google.protobuf.Struct payloads holding the JSON form
// of forecast.Scenario and forecast.Result, so no generated stubs are needed.
package battleserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "battlecalc.v1.ForecastService"
	// ForecastMethod is the full method path of the Forecast RPC.
	ForecastMethod = "/" + ServiceName + "/Forecast"
)

// ForecastServiceServer is the server API for the forecast service.
type ForecastServiceServer interface {
	Forecast(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ForecastServiceDesc describes the forecast service for registration.
var ForecastServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ForecastServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Forecast",
			Handler:    forecastHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battlecalc/v1/forecast.proto",
}

// RegisterForecastServiceServer registers srv with s.
//
// Precondition: s and srv must be non-nil.
func RegisterForecastServiceServer(s grpc.ServiceRegistrar, srv ForecastServiceServer) {
	s.RegisterService(&ForecastServiceDesc, srv)
}

func forecastHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ForecastServiceServer).Forecast(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ForecastMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ForecastServiceServer).Forecast(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
