// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/worldwonders/internal/wonder"
)

const (
	pickOldest   = "oldest"
	pickYoungest = "youngest"
	pickRandom   = "random"
)

func pickCmd(load catalogLoader) *cobra.Command {
	var filters filterFlags
	var asJSON bool

	c := &cobra.Command{
		Use:       "pick oldest|youngest|random",
		Short:     "Pick a single wonder among those matching the filters",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{pickOldest, pickYoungest, pickRandom},
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.spec(cmd)
			if err != nil {
				return err
			}

			service, err := newService(load)
			if err != nil {
				return err
			}

			var picked *wonder.Wonder
			switch args[0] {
			case pickOldest:
				picked, err = service.OldestWonder(cmd.Context(), filter)
			case pickYoungest:
				picked, err = service.YoungestWonder(cmd.Context(), filter)
			case pickRandom:
				picked, err = service.RandomWonder(cmd.Context(), filter)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), picked)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", picked.Name, picked.BuildYear)
			return nil
		},
	}

	filters.register(c)
	c.Flags().BoolVar(&asJSON, "json", false, "Print the full record as JSON")
	return c
}
