package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cory-johannsen/battlecalc/internal/battleserver"
	"github.com/cory-johannsen/battlecalc/internal/forecast"
)

func newForecastCmd(env *cliEnv) *cobra.Command {
	var (
		scenarioPath string
		clamp        bool
		asJSON       bool
		serverAddr   string
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Resolve a scenario file and print both sides of the forecast",
		Long: `Reads a YAML scenario describing a left and a right combatant and
prints their hit, crit, damage and doubling. With --server the scenario is
sent to a running battleserver instead of being resolved locally; --clamp
applies to either.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := forecast.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("clamp") {
				clamp = env.cfg.Forecast.ClampPercentages
			}

			var res forecast.Result
			if serverAddr != "" {
				res, err = remoteForecast(cmd.Context(), serverAddr, timeout, scenario)
			} else {
				res, err = localForecast(cmd, env, scenario)
			}
			if err != nil {
				return err
			}
			if clamp {
				res.Clamp()
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderForecast(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario YAML file")
	cmd.Flags().BoolVar(&clamp, "clamp", false, "also report hit and crit clamped to 0-100")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&serverAddr, "server", "", "resolve on a battleserver at host:port")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "remote call timeout")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func localForecast(cmd *cobra.Command, env *cliEnv, s forecast.Scenario) (forecast.Result, error) {
	lib, err := env.library(cmd)
	if err != nil {
		return forecast.Result{}, err
	}
	return forecast.NewResolver(lib).Resolve(s)
}

func remoteForecast(ctx context.Context, addr string, timeout time.Duration, s forecast.Scenario) (forecast.Result, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return forecast.Result{}, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return battleserver.NewClient(conn).Forecast(ctx, s)
}
