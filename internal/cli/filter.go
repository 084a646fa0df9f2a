// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/worldwonders/internal/wonder"
)

// filterFlags mirrors the HTTP filter query parameters.
type filterFlags struct {
	name       string
	location   string
	timePeriod string
	category   string
	lower      int16
	upper      int16
}

func (flags *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Case-insensitive substring of the name")
	cmd.Flags().StringVar(&flags.location, "location", "", "Case-insensitive substring of the location")
	cmd.Flags().StringVar(&flags.timePeriod, "time-period", "", "Exact time period, e.g. Ancient")
	cmd.Flags().StringVar(&flags.category, "category", "", "Category membership, e.g. SevenWonders")
	cmd.Flags().Int16Var(&flags.lower, "lower", 0, "Inclusive lower build year bound")
	cmd.Flags().Int16Var(&flags.upper, "upper", 0, "Inclusive upper build year bound")
}

// spec converts the parsed flags. Bounds count only when explicitly passed.
func (flags *filterFlags) spec(cmd *cobra.Command) (wonder.FilterSpec, error) {
	spec := wonder.FilterSpec{
		NameContains:     flags.name,
		LocationContains: flags.location,
		TimePeriod:       wonder.TimePeriod(flags.timePeriod),
		Category:         wonder.Category(flags.category),
	}

	if spec.TimePeriod != "" && !spec.TimePeriod.IsValid() {
		return spec, fmt.Errorf("unknown time period %q, expected one of %v", flags.timePeriod, wonder.TimePeriods())
	}
	if spec.Category != "" && !spec.Category.IsValid() {
		return spec, fmt.Errorf("unknown category %q, expected one of %v", flags.category, wonder.Categories(false))
	}

	if cmd.Flags().Changed("lower") {
		lower := flags.lower
		spec.LowerLimit = &lower
	}
	if cmd.Flags().Changed("upper") {
		upper := flags.upper
		spec.UpperLimit = &upper
	}
	return spec, nil
}
