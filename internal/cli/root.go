// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the wonderctl command tree.

Every command runs the same [wonder.Service] as the HTTP API over the catalogue
embedded in the binary, so results match the server exactly. No network access
or cache is involved.
*/
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/worldwonders/internal/wonder"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(wonder.Load)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// catalogLoader produces the catalogue a command operates on.
type catalogLoader func() (*wonder.Catalog, error)

func newRootCmd(load catalogLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wonderctl",
		Short:        "Query the world wonders catalogue",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		validateCmd(load),
		listCmd(load),
		showCmd(load),
		pickCmd(load),
	)
	return cmd
}

// newService loads the catalogue and wraps it in an uncached [wonder.Service].
func newService(load catalogLoader) (*wonder.Service, error) {
	catalog, err := load()
	if err != nil {
		return nil, err
	}
	return wonder.NewService(catalog, nil, slog.New(slog.DiscardHandler)), nil
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
