package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/spellcatalog"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/hashfunc"
	"github.com/gostonefire/spellcatalog/internal/hash"
	"github.com/gostonefire/spellcatalog/spell"
)

// hashSelection maps a --hash name to a collision resolution technique and, for the
// custom double hashing variants, the algorithm instance
func hashSelection(name string, capacity int64) (technique int, algorithm hashfunc.HashAlgorithm, err error) {
	switch name {
	case "charsum", "":
		technique = crt.DoubleHashing
	case "crc32":
		technique = crt.DoubleHashing
		algorithm = hash.NewDoubleHashAlgorithm(capacity)
	case "xxhash":
		technique = crt.DoubleHashing
		algorithm = hash.NewXXHashAlgorithm(capacity)
	case "linear":
		technique = crt.LinearProbing
	case "quadratic":
		technique = crt.QuadraticProbing
	default:
		err = fmt.Errorf("unknown hash %q, expected charsum, crc32, xxhash, linear or quadratic", name)
	}

	return
}

// newTable creates an empty spell table according to the current settings
func newTable() (*spellcatalog.SpellTable, error) {
	technique, algorithm, err := hashSelection(cfg.Hash, cfg.TableCapacity)
	if err != nil {
		return nil, err
	}

	table, info, err := spellcatalog.NewSpellTable(cfg.TableCapacity, technique, algorithm)
	if err != nil {
		return nil, fmt.Errorf("create spell table: %w", err)
	}

	logger.Debug("spell table created",
		"capacity", info.Capacity,
		"capacity_needed", info.CapacityNeeded,
		"hash", cfg.Hash,
		"internal_algorithm", info.InternalAlgorithm)

	return table, nil
}

// newCatalog creates an empty catalog according to the current settings
func newCatalog() (*spellcatalog.Catalog, error) {
	policy, err := crt.ParseDuplicatePolicy(cfg.Duplicates)
	if err != nil {
		return nil, err
	}

	catalog, err := spellcatalog.NewCatalog(cfg.Buckets, policy)
	if err != nil {
		return nil, fmt.Errorf("create catalog: %w", err)
	}

	return catalog, nil
}

// loadTable puts every entry into a new spell table. Rejected entries are logged and skipped.
func loadTable(entries []spell.Simple) (*spellcatalog.SpellTable, error) {
	table, err := newTable()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		probes, err := table.Put(entry)
		switch {
		case err == nil:
			logger.Debug("spell put", "name", entry.Name, "probes", probes)
		case errors.Is(err, crt.DuplicateKey{}), errors.Is(err, crt.TableFull{}):
			logger.Warn("spell not put", "name", entry.Name, "probes", probes, "error", err)
		default:
			return nil, fmt.Errorf("put %s: %w", entry.Name, err)
		}
	}

	return table, nil
}

// loadCatalog adds every spell to a new catalog. Rejected spells are logged and skipped.
func loadCatalog(spells []spell.Spell) (*spellcatalog.Catalog, error) {
	catalog, err := newCatalog()
	if err != nil {
		return nil, err
	}

	for _, s := range spells {
		if err = catalog.AddSpell(s); err != nil {
			logger.Warn("spell not added", "name", s.Name, "category", s.Category, "error", err)
		}
	}

	logger.Debug("catalog loaded", "spells", catalog.CountSpells(), "categories", len(catalog.Categories()))

	return catalog, nil
}

// requireSeed reads the seed file given by --seed or SPELLCTL_SEED
func requireSeed() (*seed, error) {
	if cfg.SeedPath == "" {
		return nil, errors.New("no seed file, use --seed or SPELLCTL_SEED")
	}

	return readSeed(cfg.SeedPath)
}
