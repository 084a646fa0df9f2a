// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/worldwonders/internal/wonder"
)

func listCmd(load catalogLoader) *cobra.Command {
	var filters filterFlags
	var sortBy string
	var reverse bool
	var asJSON bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List the wonders matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filters.spec(cmd)
			if err != nil {
				return err
			}

			order := wonder.SortSpec{By: wonder.SortBy(sortBy), Reverse: reverse}
			if order.By != "" && !order.By.IsValid() {
				return fmt.Errorf("unknown sort key %q, expected one of %v", sortBy, wonder.SortOptions())
			}

			service, err := newService(load)
			if err != nil {
				return err
			}

			wonders, err := service.ListWonders(cmd.Context(), filter, order)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), wonders)
			}
			for _, w := range wonders {
				fmt.Fprintln(cmd.OutOrStdout(), w.Name)
			}
			return nil
		},
	}

	filters.register(c)
	c.Flags().StringVar(&sortBy, "sort-by", "", "Sort key: BuildYear or Alphabetical")
	c.Flags().BoolVar(&reverse, "reverse", false, "Reverse the sort order")
	c.Flags().BoolVar(&asJSON, "json", false, "Print full records as JSON")
	return c
}
