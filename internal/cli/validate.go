// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/worldwonders/internal/wonder"
)

func validateCmd(load catalogLoader) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the embedded dataset, or a dataset file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := "embedded dataset"
			loadCatalog := load

			if file != "" {
				source = file
				loadCatalog = func() (*wonder.Catalog, error) {
					data, err := os.ReadFile(file)
					if err != nil {
						return nil, fmt.Errorf("read dataset: %w", err)
					}
					return wonder.LoadFrom(data, time.Now().Year())
				}
			}

			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s has %d wonders (sha256 %s)\n", source, catalog.Len(), catalog.Fingerprint())
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Dataset JSON file to validate instead of the embedded one")
	return c
}
