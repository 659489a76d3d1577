package main

import (
	"fmt"
	"github.com/spf13/cobra"
)

var (
	topKCategory string
	topKCount    int
)

func newTopKCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topk",
		Short: "List the most powerful spells of a category",
		Long: `The topk command prints the k most powerful spells of a category, strongest first.

Example:
  spellctl topk --seed spells.yaml --category fire -k 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopK(cmd)
		},
	}
	cmd.Flags().StringVarP(&topKCategory, "category", "c", "", "Spell category")
	cmd.Flags().IntVarP(&topKCount, "count", "k", 3, "Number of spells to list")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func runTopK(cmd *cobra.Command) error {
	sd, err := requireSeed()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(sd.Spells)
	if err != nil {
		return err
	}

	if catalog.CountCategory(topKCategory) == 0 {
		return fmt.Errorf("unknown category %q", topKCategory)
	}

	printTopK(cmd.OutOrStdout(),
		fmt.Sprintf("Top %d spells in the '%s' category:", topKCount, topKCategory),
		catalog.TopK(topKCategory, topKCount))

	return nil
}
