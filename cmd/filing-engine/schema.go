// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/schema"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [filing-type]",
	Short: "List the item schema for a filing type",
	Long: `Schema prints the ordered item list for a filing type: identifier,
required marker, and display name. For 8-K, --filed selects between the
current dotted numbering and the pre-2004 numeric scheme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	ft := types.Filing10K
	if len(args) > 0 {
		ft = types.FilingType(args[0])
	}

	var filed time.Time
	if filedStr, _ := cmd.Flags().GetString("filed"); filedStr != "" {
		t, err := time.Parse("2006-01-02", filedStr)
		if err != nil {
			return fmt.Errorf("parsing --filed: %w", err)
		}
		filed = t
	}

	sch, err := schema.Default().Lookup(ft, filed)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s items:\n", ft)
	for _, spec := range sch.Items {
		marker := " "
		if spec.Required {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "  %s %-10s  %s\n", marker, spec.ID, spec.DisplayName)
	}
	return nil
}

func init() {
	schemaCmd.Flags().String("filed", "", "filed date (YYYY-MM-DD) selecting a dated schema variant")

	rootCmd.AddCommand(schemaCmd)
}
