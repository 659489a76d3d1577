package main

import (
	"fmt"
	"github.com/spf13/cobra"
)

var (
	searchCategory string
	searchName     string
	searchPower    int
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a spell by category, name and power level",
		Long: `The search command looks up one spell in the tree of its category.

Example:
  spellctl search --seed spells.yaml --category fire --name fireball --power 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd)
		},
	}
	cmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Spell category")
	cmd.Flags().StringVarP(&searchName, "name", "n", "", "Spell name")
	cmd.Flags().IntVarP(&searchPower, "power", "p", 0, "Spell power level")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("power")
	return cmd
}

func runSearch(cmd *cobra.Command) error {
	sd, err := requireSeed()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(sd.Spells)
	if err != nil {
		return err
	}

	if s, found := catalog.SearchSpell(searchCategory, searchName, searchPower); found {
		fmt.Fprintf(cmd.OutOrStdout(), "Spell Found: %s\n", s)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Spell Not Found")
	}

	return nil
}
