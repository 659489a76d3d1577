package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/spell"
	"github.com/spf13/cobra"
	"io"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built in walkthrough of the spell table and the catalog",
		Long: `The demo command fills a spell table until it is full and loads a small catalog,
printing lookups, counts and top spells along the way. The table part expects the
default capacity of 7 to show a full table.

Example:
  spellctl demo
  spellctl demo --hash xxhash --duplicates reject`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	fmt.Fprintln(out, "Part 1 Tests:")

	table, err := newTable()
	if err != nil {
		return err
	}

	for _, s := range []spell.Simple{
		{Name: "Abracadabra", Words: "Avada Kedavra"},
		{Name: "Expecto Patronum", Words: "I’m gonna stand here like a unicorn"},
		{Name: "Wingardium Leviosa", Words: "Get up, stand up"},
		{Name: "Shazam", Words: "24K Magic in the air"},
	} {
		if _, err = table.Put(s); err != nil {
			logger.Warn("spell not put", "name", s.Name, "error", err)
		}
	}

	for _, name := range []string{"Shazam", "Abracadabra"} {
		words, probes, err := table.GetWords(name)
		if err != nil {
			return fmt.Errorf("get %s: %w", name, err)
		}
		fmt.Fprintln(out, words)
		logger.Debug("spell found", "name", name, "probes", probes)
	}

	fmt.Fprintf(out, "Table size: %d\n", table.Size())

	_, err = table.Put(spell.Simple{Name: "Abracadabra", Words: "Expelliarmus"})
	fmt.Fprintf(out, "Spell added: %t\n", err == nil)
	if errors.Is(err, crt.DuplicateKey{}) {
		logger.Info("duplicate rejected", "name", "Abracadabra")
	}

	for _, s := range []spell.Simple{
		{Name: "Lumos", Words: "Let there be light"},
		{Name: "Nox", Words: "Extinguish the light"},
		{Name: "Alohomora", Words: "Open Sesame"},
	} {
		if _, err = table.Put(s); err != nil {
			logger.Warn("spell not put", "name", s.Name, "error", err)
		}
	}

	probes, err := table.Put(spell.Simple{Name: "Accio", Words: "Summon the object"})
	fmt.Fprintf(out, "Spell added to full table: %t\n", err == nil)
	fmt.Fprintf(out, "Last steps taken: %d\n", probes)
	fmt.Fprintf(out, "Table size: %d\n", table.Size())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Part 2 Tests:")

	catalog, err := loadCatalog([]spell.Spell{
		{Name: "lightning bolt", Category: "lightning", PowerLevel: 11, Words: "go lightning bolt"},
		{Name: "fireball", Category: "fire", PowerLevel: 10, Words: "fireball!"},
		{Name: "frostbolt", Category: "ice", PowerLevel: 7, Words: "freeze please"},
		{Name: "thunderstorm", Category: "lightning", PowerLevel: 9, Words: "I`m going to shock you"},
		{Name: "poison spray", Category: "poison", PowerLevel: 5, Words: "sssss"},
		{Name: "shockwave", Category: "lightning", PowerLevel: 8, Words: "go pikachu!"},
		{Name: "flamethrower min", Category: "fire", PowerLevel: 6, Words: "foo"},
		{Name: "flamethrower", Category: "fire", PowerLevel: 8, Words: "foo better"},
		{Name: "fireball II", Category: "fire", PowerLevel: 12, Words: "fireball!!"},
		{Name: "flamethrower II", Category: "fire", PowerLevel: 15, Words: "foooooooo!"},
		{Name: "shockwave II", Category: "lightning", PowerLevel: 10, Words: "be useful pikachu."},
		{Name: "frost nova", Category: "ice", PowerLevel: 4, Words: "chill dude"},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "The current number of spells is %d\n", catalog.CountSpells())
	fmt.Fprintf(out, "The current number of fire spells is %d\n", catalog.CountCategory("fire"))

	printTopK(out, "Top 3 spells in the 'fire' category:", catalog.TopK("fire", 3))
	printTopK(out, "Top 3 spells in the 'lightning' category:", catalog.TopK("lightning", 3))

	for _, q := range []struct {
		category, name string
		power          int
	}{
		{"fire", "fireball", 10},
		{"fire", "fireball", 11},
		{"ice", "fireball", 10},
	} {
		if s, found := catalog.SearchSpell(q.category, q.name, q.power); found {
			fmt.Fprintf(out, "Spell Found: %s\n", s)
		} else {
			fmt.Fprintln(out, "Spell Not Found")
		}
	}

	if err = catalog.AddSpell(spell.Spell{Name: "fireball II", Category: "fire", PowerLevel: 11, Words: "more fire!"}); err != nil {
		logger.Warn("spell not added", "name", "fireball II", "error", err)
	}

	printTopK(out, "Updated top 3 spells in the 'fire' category:", catalog.TopK("fire", 3))
	fmt.Fprintf(out, "The current number of fire spells is %d\n", catalog.CountCategory("fire"))
	fmt.Fprintf(out, "The current number of spells is %d\n", catalog.CountSpells())

	return catalog.Validate()
}

func printTopK(out io.Writer, title string, spells []spell.Spell) {
	fmt.Fprintln(out, title)
	for _, s := range spells {
		fmt.Fprintln(out, s)
	}
}
