package battleserver

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cory-johannsen/battlecalc/internal/forecast"
)

// Client calls a remote forecast service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc.
//
// Precondition: cc must be non-nil.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Forecast sends s to the server and decodes the returned result.
//
// Postcondition: Server failures are returned as gRPC status errors.
func (c *Client) Forecast(ctx context.Context, s forecast.Scenario, opts ...grpc.CallOption) (forecast.Result, error) {
	req, err := toStruct(s)
	if err != nil {
		return forecast.Result{}, fmt.Errorf("encoding scenario: %w", err)
	}
	resp := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ForecastMethod, req, resp, opts...); err != nil {
		return forecast.Result{}, err
	}
	data, err := protojson.Marshal(resp)
	if err != nil {
		return forecast.Result{}, fmt.Errorf("decoding result: %w", err)
	}
	var res forecast.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return forecast.Result{}, fmt.Errorf("decoding result: %w", err)
	}
	return res, nil
}
