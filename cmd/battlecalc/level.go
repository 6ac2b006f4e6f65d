package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
)

func newLevelCmd(env *cliEnv) *cobra.Command {
	var (
		className string
		level     int
	)
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Print a class's stats at a level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 1 {
				return fmt.Errorf("level must be at least 1, got %d", level)
			}
			lib, err := env.library(cmd)
			if err != nil {
				return err
			}
			class, err := lib.Classes.Resolve(className)
			if err != nil {
				return err
			}
			m := ruleset.StatsAtLevel(class, level, ruleset.DefaultStats)
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(fmt.Sprintf("%s lv %d", class.Name, level), m))
			return nil
		},
	}
	cmd.Flags().StringVarP(&className, "class", "c", "", "class id or name")
	cmd.Flags().IntVarP(&level, "level", "l", 1, "target level")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}
