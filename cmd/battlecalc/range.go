package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
)

func newRangeCmd(env *cliEnv) *cobra.Command {
	var (
		itemID   string
		mag      int
		fallback string
	)
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the attack range label of an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := env.library(cmd)
			if err != nil {
				return err
			}
			it, err := lib.Items.Lookup(itemID)
			if err != nil {
				return err
			}
			opts := []item.RangeOption{item.WithFallback(fallback)}
			if cmd.Flags().Changed("mag") {
				opts = append(opts, item.WithMag(mag))
			}
			fmt.Fprintln(cmd.OutOrStdout(), item.RangeLabel(it, opts...))
			return nil
		},
	}
	cmd.Flags().StringVarP(&itemID, "item", "i", "", "item id")
	cmd.Flags().IntVar(&mag, "mag", 0, "wielder magic, used by formula ranges")
	cmd.Flags().StringVar(&fallback, "fallback", "-", "label for items without a range")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}
