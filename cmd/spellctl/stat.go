package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

var (
	statDistribution bool
	statDump         bool
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Show spell table and catalog statistics",
		Long: `The stat command loads the seed and prints the spell table usage followed by the
size and height of every category tree.

Example:
  spellctl stat --seed spells.yaml
  spellctl stat --seed spells.yaml --distribution --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd)
		},
	}
	cmd.Flags().BoolVar(&statDistribution, "distribution", false, "Show how many spells were placed at each probe iteration")
	cmd.Flags().BoolVar(&statDump, "dump", false, "Print every category tree sideways")
	return cmd
}

func runStat(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	sd, err := requireSeed()
	if err != nil {
		return err
	}

	table, err := loadTable(sd.Table)
	if err != nil {
		return err
	}

	tableStat, err := table.Stat(statDistribution)
	if err != nil {
		return fmt.Errorf("table stat: %w", err)
	}

	fmt.Fprintf(out, "Table: %d/%d slots used, load factor %.2f\n",
		tableStat.Records, tableStat.Capacity, tableStat.LoadFactor)
	for probes, n := range tableStat.ProbeDistribution {
		if n > 0 {
			fmt.Fprintf(out, "  probes %d: %d\n", probes, n)
		}
	}

	catalog, err := loadCatalog(sd.Spells)
	if err != nil {
		return err
	}
	if err = catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	fmt.Fprintf(out, "Catalog: %d spells\n", catalog.CountSpells())
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSPELLS\tHEIGHT")
	for _, category := range catalog.Categories() {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", category, catalog.CountCategory(category), catalog.Height(category))
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if statDump {
		for _, category := range catalog.Categories() {
			if err = catalog.Dump(out, category); err != nil {
				return err
			}
		}
	}

	return nil
}
