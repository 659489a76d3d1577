//go:build unit

package spellcatalog

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"strings"
	"testing"
)

func spellNames(spells []spell.Spell) (r []string) {
	for _, s := range spells {
		r = append(r, s.Name)
	}
	return
}

func newTestCatalog(t *testing.T, policy crt.DuplicatePolicy) *Catalog {
	catalog, err := NewCatalog(10, policy)
	require.NoError(t, err, "create new catalog")

	spells := []spell.Spell{
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
	}
	for _, s := range spells {
		require.NoErrorf(t, catalog.AddSpell(s), "add spell %s", s.Name)
	}

	return catalog
}

func TestNewCatalog(t *testing.T) {
	t.Run("creates an empty catalog", func(t *testing.T) {
		// Execute
		catalog, err := NewCatalog(10, crt.TieBreakByName)

		// Check
		assert.NoError(t, err, "create new catalog")
		assert.Equal(t, 0, catalog.CountSpells(), "no spells")
		assert.Empty(t, catalog.Categories(), "no categories")
	})

	t.Run("rejects a non positive bucket count", func(t *testing.T) {
		// Execute
		_, err := NewCatalog(0, crt.TieBreakByName)

		// Check
		assert.Error(t, err, "bucket count rejected")
	})
}

func TestCatalog_AddSpell(t *testing.T) {
	t.Run("keeps spells of each category in their own tree", func(t *testing.T) {
		// Execute
		catalog := newTestCatalog(t, crt.TieBreakByName)

		// Check
		assert.Equal(t, 12, catalog.CountSpells(), "all spells counted")
		assert.Equal(t, 5, catalog.CountCategory("fire"), "fire spells")
		assert.Equal(t, 4, catalog.CountCategory("lightning"), "lightning spells")
		assert.Equal(t, 2, catalog.CountCategory("ice"), "ice spells")
		assert.Equal(t, 1, catalog.CountCategory("poison"), "poison spells")
		assert.Equal(t, 0, catalog.CountCategory("water"), "unknown category")
		assert.Equal(t, []string{"fire", "ice", "lightning", "poison"}, catalog.Categories(), "sorted categories")
		assert.Equal(t, 2, catalog.Height("fire"), "fire tree height")
		assert.Equal(t, -1, catalog.Height("water"), "unknown category height")
		assert.NoError(t, catalog.Validate(), "valid catalog")
	})

	t.Run("keeps a spell with an equal power level under a new name", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.TieBreakByName)

		// Execute
		err := catalog.AddSpell(spell.Spell{Name: "fireball II", Category: "fire", PowerLevel: 11, Words: "more fire!"})

		// Check
		assert.NoError(t, err, "spell added")
		assert.Equal(t, []string{"flamethrower II", "fireball II", "fireball II"}, spellNames(catalog.TopK("fire", 3)), "updated top 3")
		assert.Equal(t, 6, catalog.CountCategory("fire"), "fire spells")
		assert.Equal(t, 13, catalog.CountSpells(), "all spells")
	})

	t.Run("does not count rejected spells", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.RejectEqualPower)

		// Execute
		err := catalog.AddSpell(spell.Spell{Name: "blaze", Category: "fire", PowerLevel: 10})

		// Check
		assert.ErrorIs(t, err, crt.DuplicateKey{}, "equal power rejected")
		assert.Equal(t, 5, catalog.CountCategory("fire"), "fire spells unchanged")
		assert.Equal(t, 12, catalog.CountSpells(), "all spells unchanged")
		assert.NoError(t, catalog.Validate(), "valid catalog")
	})

	t.Run("does not count overwritten spells", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.OverwriteEqualPower)

		// Execute
		err := catalog.AddSpell(spell.Spell{Name: "blaze", Category: "fire", PowerLevel: 10})

		// Check
		assert.NoError(t, err, "equal power overwritten")
		assert.Equal(t, 5, catalog.CountCategory("fire"), "fire spells unchanged")
		assert.Equal(t, 12, catalog.CountSpells(), "all spells unchanged")
		_, found := catalog.SearchSpell("fire", "blaze", 10)
		assert.True(t, found, "new spell stored")
		_, found = catalog.SearchSpell("fire", "fireball", 10)
		assert.False(t, found, "old spell replaced")
	})

	t.Run("stays valid under random inserts", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		catalog, err := NewCatalog(4, crt.TieBreakByName)
		require.NoError(t, err, "create new catalog")
		categories := []string{"fire", "ice", "lightning", "poison", "arcane"}

		// Execute
		added := 0
		for i := 0; i < 1000; i++ {
			s := spell.Spell{Name: fmt.Sprintf("s%d", i), Category: categories[rnd.Intn(len(categories))], PowerLevel: rnd.Intn(100)}
			require.NoError(t, catalog.AddSpell(s), "add spell")
			added++
		}

		// Check
		assert.Equal(t, added, catalog.CountSpells(), "all spells counted")
		assert.NoError(t, catalog.Validate(), "valid catalog")
	})
}

func TestCatalog_TopK(t *testing.T) {
	t.Run("round trips a small catalog", func(t *testing.T) {
		// Prepare
		catalog, err := NewCatalog(10, crt.TieBreakByName)
		require.NoError(t, err, "create new catalog")
		require.NoError(t, catalog.AddSpell(spell.Spell{Name: "fireball", Category: "fire", PowerLevel: 10}), "add fireball")
		require.NoError(t, catalog.AddSpell(spell.Spell{Name: "frostbolt", Category: "ice", PowerLevel: 7}), "add frostbolt")
		require.NoError(t, catalog.AddSpell(spell.Spell{Name: "flamethrower", Category: "fire", PowerLevel: 8}), "add flamethrower")

		// Execute
		topK := catalog.TopK("fire", 2)

		// Check
		require.Len(t, topK, 2, "two spells")
		assert.Equal(t, "fireball", topK[0].Name, "fireball first")
		assert.Equal(t, 10, topK[0].PowerLevel, "fireball power")
		assert.Equal(t, "flamethrower", topK[1].Name, "flamethrower second")
		assert.Equal(t, 8, topK[1].PowerLevel, "flamethrower power")
	})

	t.Run("returns the top spells per category", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.TieBreakByName)

		// Check
		assert.Equal(t, []string{"flamethrower II", "fireball II", "fireball"}, spellNames(catalog.TopK("fire", 3)), "top 3 fire")
		assert.Equal(t, []string{"lightning bolt", "shockwave II", "thunderstorm"}, spellNames(catalog.TopK("lightning", 3)), "top 3 lightning")
		assert.Equal(t, []string{"poison spray"}, spellNames(catalog.TopK("poison", 3)), "fewer than k")
		assert.Nil(t, catalog.TopK("water", 3), "unknown category")
	})
}

func TestCatalog_SearchSpell(t *testing.T) {
	t.Run("searches by category, name and power level", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.TieBreakByName)

		// Execute
		s, found := catalog.SearchSpell("fire", "fireball", 10)
		_, foundWrongPower := catalog.SearchSpell("fire", "fireball", 11)
		_, foundWrongCategory := catalog.SearchSpell("ice", "fireball", 10)
		_, foundUnknown := catalog.SearchSpell("water", "fireball", 10)

		// Check
		assert.True(t, found, "spell found")
		assert.Equal(t, "fireball (fire) - Power Level: 10, to cast say: fireball!", s.String(), "spell returned")
		assert.False(t, foundWrongPower, "wrong power level")
		assert.False(t, foundWrongCategory, "wrong category")
		assert.False(t, foundUnknown, "unknown category")
	})
}

func TestCatalog_Dump(t *testing.T) {
	t.Run("dumps a category tree", func(t *testing.T) {
		// Prepare
		catalog := newTestCatalog(t, crt.TieBreakByName)
		w := new(strings.Builder)

		// Execute
		err := catalog.Dump(w, "ice")

		// Check
		assert.NoError(t, err, "dump ice")
		assert.Equal(t, "### ice: size(2), height(1)\n7 frostbolt [h=1]\n    4 frost nova [h=0]\n", w.String(), "dump output")
	})

	t.Run("fails for an unknown category", func(t *testing.T) {
		// Execute
		err := newTestCatalog(t, crt.TieBreakByName).Dump(new(strings.Builder), "water")

		// Check
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "unknown category")
	})
}
