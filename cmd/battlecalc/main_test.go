package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/battlecalc/internal/battleserver"
	"github.com/cory-johannsen/battlecalc/internal/content"
	"github.com/cory-johannsen/battlecalc/internal/forecast"
	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
)

const contentDir = "../../content"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "battlecalc "+Version)
}

func TestForecast_JSON(t *testing.T) {
	out, err := execute(t, "forecast", "--content", contentDir, "--scenario", "../../scenarios/example.yaml", "--json")
	require.NoError(t, err)

	var res forecast.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Lyn", res.Left.Name)
	assert.Equal(t, "Myrmidon", res.Left.Class)
	assert.Equal(t, 11, res.Left.CurrentHP)
	assert.Equal(t, "Bandit", res.Right.Name)
	assert.Len(t, res.Left.Skills, 3)
	assert.Nil(t, res.Left.Display)
}

func TestForecast_ClampFlag(t *testing.T) {
	out, err := execute(t, "forecast", "--content", contentDir, "--scenario", "../../scenarios/example.yaml", "--json", "--clamp")
	require.NoError(t, err)

	var res forecast.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Left.Display)
	assert.LessOrEqual(t, res.Left.Display.Hit, 100)
}

func TestForecast_Rendered(t *testing.T) {
	out, err := execute(t, "forecast", "--content", contentDir, "--scenario", "../../scenarios/magic.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Damage")
	assert.Contains(t, out, "Range")
}

func TestForecast_RequiresScenario(t *testing.T) {
	_, err := execute(t, "forecast", "--content", contentDir)
	assert.Error(t, err)
}

// startForecastServer serves the shipped content over TCP and returns its address.
func startForecastServer(t *testing.T) string {
	t.Helper()
	logger := zaptest.NewLogger(t)
	lib, err := content.Load(context.Background(), contentDir, logger)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	gs := battleserver.NewGRPCServer(battleserver.NewServer(forecast.NewResolver(lib), logger), logger)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)
	return lis.Addr().String()
}

func TestForecast_Remote(t *testing.T) {
	addr := startForecastServer(t)

	out, err := execute(t, "forecast", "--scenario", "../../scenarios/example.yaml", "--json", "--server", addr)
	require.NoError(t, err)

	var res forecast.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.ForecastID)
	assert.Equal(t, "Lyn", res.Left.Name)
	assert.Nil(t, res.Left.Display)
}

func TestForecast_RemoteClamp(t *testing.T) {
	addr := startForecastServer(t)

	out, err := execute(t, "forecast", "--scenario", "../../scenarios/example.yaml", "--json", "--clamp", "--server", addr)
	require.NoError(t, err)

	var res forecast.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.ForecastID)
	for _, sr := range []forecast.SideResult{res.Left, res.Right} {
		require.NotNil(t, sr.Display, sr.Name)
		assert.GreaterOrEqual(t, sr.Display.Hit, 0)
		assert.LessOrEqual(t, sr.Display.Hit, 100)
		assert.GreaterOrEqual(t, sr.Display.Crit, 0)
		assert.LessOrEqual(t, sr.Display.Crit, 100)
	}
}

func TestForecast_InventoryScenario(t *testing.T) {
	out, err := execute(t, "forecast", "--content", contentDir, "--scenario", "../../scenarios/inventory.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Killing Edge")
	assert.Contains(t, out, "slot-1, slot-2")
}

func TestRange(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--item", "iron-sword"}, "1"},
		{[]string{"--item", "bolting", "--mag", "9"}, "4"},
		{[]string{"--item", "bolting"}, item.HalfMagicFormula},
		{[]string{"--item", "vulnerary", "--fallback", "n/a"}, "n/a"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"range", "--content", contentDir}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestRange_UnknownItem(t *testing.T) {
	_, err := execute(t, "range", "--content", contentDir, "--item", "excalibur")
	assert.ErrorIs(t, err, item.ErrUnknownItem)
}

func TestLevel(t *testing.T) {
	out, err := execute(t, "level", "--content", contentDir, "--class", "myrmidon", "--level", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Myrmidon lv 2")
	assert.Contains(t, out, "19")
}

func TestLevel_Errors(t *testing.T) {
	_, err := execute(t, "level", "--content", contentDir, "--class", "paladin")
	assert.ErrorIs(t, err, ruleset.ErrUnknownClass)

	_, err = execute(t, "level", "--content", contentDir, "--class", "myrmidon", "--level", "0")
	assert.Error(t, err)
}
