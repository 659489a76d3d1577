//go:build unit

package main

import (
	"github.com/gostonefire/spellcatalog/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestDecodeSeed(t *testing.T) {
	t.Run("reads spells and table entries", func(t *testing.T) {
		// Prepare
		input := `
spells:
  - {name: fireball, category: fire, power: 10, words: "fireball!"}
table:
  - {name: Shazam, words: 24K Magic in the air}
`

		// Execute
		sd, err := decodeSeed(strings.NewReader(input))

		// Check
		require.NoError(t, err, "decode seed")
		assert.Equal(t, []spell.Spell{{Name: "fireball", Category: "fire", PowerLevel: 10, Words: "fireball!"}}, sd.Spells, "spells")
		assert.Equal(t, []spell.Simple{{Name: "Shazam", Words: "24K Magic in the air"}}, sd.Table, "table")
	})

	t.Run("fills the table from the spells when absent", func(t *testing.T) {
		// Prepare
		input := "spells:\n  - {name: frostbolt, category: ice, power: 7, words: freeze please}\n"

		// Execute
		sd, err := decodeSeed(strings.NewReader(input))

		// Check
		require.NoError(t, err, "decode seed")
		assert.Equal(t, []spell.Simple{{Name: "frostbolt", Words: "freeze please"}}, sd.Table, "table from spells")
	})

	t.Run("normalizes names to NFC", func(t *testing.T) {
		// Prepare
		input := "spells:\n  - {name: \"Fe\u0301e\", category: \"e\u0301clat\", power: 1}\n"

		// Execute
		sd, err := decodeSeed(strings.NewReader(input))

		// Check
		require.NoError(t, err, "decode seed")
		assert.Equal(t, "F\u00e9e", sd.Spells[0].Name, "composed name")
		assert.Equal(t, "\u00e9clat", sd.Spells[0].Category, "composed category")
	})

	t.Run("accepts an empty seed", func(t *testing.T) {
		// Execute
		sd, err := decodeSeed(strings.NewReader(""))

		// Check
		require.NoError(t, err, "decode seed")
		assert.Empty(t, sd.Spells, "no spells")
		assert.Empty(t, sd.Table, "no table")
	})

	t.Run("rejects bad input", func(t *testing.T) {
		// Prepare
		tests := map[string]string{
			"missing category": "spells:\n  - {name: fireball, power: 10}\n",
			"missing name":     "table:\n  - {words: nothing}\n",
			"unknown field":    "spells:\n  - {name: fireball, category: fire, level: 10}\n",
			"bad power":        "spells:\n  - {name: fireball, category: fire, power: high}\n",
		}

		for name, input := range tests {
			t.Run(name, func(t *testing.T) {
				// Execute
				_, err := decodeSeed(strings.NewReader(input))

				// Check
				assert.Error(t, err, "decode rejected")
			})
		}
	})
}

func TestReadSeed(t *testing.T) {
	t.Run("reads the test seed", func(t *testing.T) {
		// Execute
		sd, err := readSeed(testSeed)

		// Check
		require.NoError(t, err, "read seed")
		assert.Len(t, sd.Spells, 12, "spells")
		assert.Len(t, sd.Table, 8, "table entries")
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		// Execute
		_, err := readSeed("testdata/missing.yaml")

		// Check
		assert.ErrorContains(t, err, "open seed", "missing file")
	})
}

func TestHashSelection(t *testing.T) {
	for _, name := range []string{"charsum", "crc32", "xxhash", "linear", "quadratic"} {
		t.Run(name, func(t *testing.T) {
			// Execute
			_, _, err := hashSelection(name, 7)

			// Check
			assert.NoError(t, err, "known hash")
		})
	}
}
