package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var wordsName string

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the cast words of a spell from the spell table",
		Long: `The words command loads the table section of the seed (or the spells when there is
none) into the spell table and looks up one name.

Example:
  spellctl words --seed spells.yaml --name Shazam
  spellctl words --seed spells.yaml --name Shazam --hash xxhash --capacity 31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(cmd)
		},
	}
	cmd.Flags().StringVarP(&wordsName, "name", "n", "", "Spell name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runWords(cmd *cobra.Command) error {
	sd, err := requireSeed()
	if err != nil {
		return err
	}

	table, err := loadTable(sd.Table)
	if err != nil {
		return err
	}

	name := norm.NFC.String(wordsName)
	words, probes, err := table.GetWords(name)
	if errors.Is(err, crt.NoRecordFound{}) {
		fmt.Fprintf(cmd.OutOrStdout(), "Spell Not Found (probes: %d)\n", probes)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (probes: %d)\n", words, probes)
	return nil
}
