// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"github.com/spf13/cobra"
)

func showCmd(load catalogLoader) *cobra.Command {
	return &cobra.Command{
		Use:     "show <slug>",
		Short:   "Print the wonder with the given slug, e.g. great-pyramid-of-giza",
		Args:    cobra.ExactArgs(1),
		Example: "  wonderctl show taj-mahal",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(load)
			if err != nil {
				return err
			}

			w, err := service.GetWonderBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}
}
