package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/spellcatalog/spell"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

type seedSpell struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Power    int    `yaml:"power"`
	Words    string `yaml:"words"`
}

type seedEntry struct {
	Name  string `yaml:"name"`
	Words string `yaml:"words"`
}

type seedFile struct {
	Spells []seedSpell `yaml:"spells"`
	Table  []seedEntry `yaml:"table"`
}

// seed holds the spells and table entries read from a seed file
type seed struct {
	Spells []spell.Spell
	Table  []spell.Simple
}

func readSeed(path string) (*seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	s, err := decodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return s, nil
}

// decodeSeed parses a YAML seed. Names and categories are normalized to NFC so that
// visually equal names compare and hash equally. When the seed has no table section
// the spell table is filled from the spells.
func decodeSeed(r io.Reader) (*seed, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	s := &seed{}
	for i, ss := range sf.Spells {
		name := norm.NFC.String(ss.Name)
		category := norm.NFC.String(ss.Category)
		if name == "" || category == "" {
			return nil, fmt.Errorf("spell #%d: name and category are required", i)
		}
		s.Spells = append(s.Spells, spell.Spell{Name: name, Category: category, PowerLevel: ss.Power, Words: ss.Words})
	}

	for i, se := range sf.Table {
		name := norm.NFC.String(se.Name)
		if name == "" {
			return nil, fmt.Errorf("table entry #%d: name is required", i)
		}
		s.Table = append(s.Table, spell.Simple{Name: name, Words: se.Words})
	}

	if len(s.Table) == 0 {
		for _, sp := range s.Spells {
			s.Table = append(s.Table, spell.Simple{Name: sp.Name, Words: sp.Words})
		}
	}

	return s, nil
}
