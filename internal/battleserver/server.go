package battleserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cory-johannsen/battlecalc/internal/forecast"
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
)

// Server implements ForecastServiceServer on top of a forecast.Resolver.
type Server struct {
	resolver *forecast.Resolver
	logger   *zap.Logger
	newID    func() string
}

// NewServer creates a Server.
//
// Precondition: resolver and logger must be non-nil.
// Postcondition: Returns a Server that tags each result with a fresh UUID.
func NewServer(resolver *forecast.Resolver, logger *zap.Logger) *Server {
	return &Server{
		resolver: resolver,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Forecast decodes a scenario, resolves it and returns the result.
//
// Postcondition: malformed scenarios yield codes.InvalidArgument; unknown
// items or classes yield codes.NotFound.
func (s *Server) Forecast(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	var scenario forecast.Scenario
	if err := fromStruct(req, &scenario); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decoding scenario: %v", err)
	}

	result, err := s.resolver.Resolve(scenario)
	if err != nil {
		return nil, statusFor(err)
	}
	result.ForecastID = s.newID()

	s.logger.Debug("forecast resolved",
		zap.String("forecast_id", result.ForecastID),
		zap.String("left", result.Left.Name),
		zap.String("right", result.Right.Name),
		zap.Int("left_damage", result.Left.Battle.Damage),
		zap.Int("right_damage", result.Right.Battle.Damage),
	)

	out, err := toStruct(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding result: %v", err)
	}
	return out, nil
}

func statusFor(err error) error {
	switch {
	case errors.Is(err, forecast.ErrInvalidScenario):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, item.ErrUnknownItem), errors.Is(err, ruleset.ErrUnknownClass):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// toStruct converts v to a Struct through its JSON form.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// fromStruct decodes s into v through its JSON form. Unknown fields are rejected.
func fromStruct(s *structpb.Struct, v any) error {
	if s == nil {
		return errors.New("empty request")
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
