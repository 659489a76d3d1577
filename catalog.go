package spellcatalog

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/internal/avl"
	"github.com/gostonefire/spellcatalog/spell"
	"slices"
)

// Catalog - Groups spells by category, each category kept in its own AVL tree ordered by power level.
// A category tree is created on the first spell of that category and lives as long as the catalog.
type Catalog struct {
	trees     map[string]*avl.Tree
	policy    crt.DuplicatePolicy
	numSpells int
}

// NewCatalog - Returns a new empty catalog
//   - bucketCount is the expected number of categories, it must be a positive value
//   - policy decides what happens when a spell with an already stored power level is added to a category
//
// It returns:
//   - catalog is a pointer to a Catalog struct
//   - err is a normal go Error which should be nil if everything went ok
func NewCatalog(bucketCount int, policy crt.DuplicatePolicy) (catalog *Catalog, err error) {
	if bucketCount <= 0 {
		err = fmt.Errorf("bucketCount must be a positive value higher than 0 (zero)")
		return
	}

	catalog = &Catalog{
		trees:  make(map[string]*avl.Tree, bucketCount),
		policy: policy,
	}

	return
}

// AddSpell - Adds a spell to the tree of its category, creating the tree if it is the first spell of the category.
//   - s is the spell to add
//
// It returns:
//   - err is nil when the spell was stored, or crt.DuplicateKey when the duplicate policy rejected it
func (C *Catalog) AddSpell(s spell.Spell) (err error) {
	tree, ok := C.trees[s.Category]
	if !ok {
		C.trees[s.Category] = avl.New(s, C.policy)
		C.numSpells++
		return
	}

	before := tree.Size()
	err = tree.Insert(s)
	if err != nil {
		err = fmt.Errorf("add spell %s (%d) to %s: %w", s.Name, s.PowerLevel, s.Category, err)
		return
	}

	C.numSpells += tree.Size() - before

	return
}

// SearchSpell - Returns the spell with the given category, name and power level.
// It returns found false when there is no such spell or no such category.
func (C *Catalog) SearchSpell(category, name string, powerLevel int) (s spell.Spell, found bool) {
	tree, ok := C.trees[category]
	if !ok {
		return
	}

	return tree.Search(name, powerLevel)
}

// CountSpells - Returns the number of spells in all categories
func (C *Catalog) CountSpells() int {
	return C.numSpells
}

// CountCategory - Returns the number of spells in a category, 0 for an unknown category
func (C *Catalog) CountCategory(category string) int {
	tree, ok := C.trees[category]
	if !ok {
		return 0
	}

	return tree.Size()
}

// Height - Returns the height of the tree of a category, -1 for an unknown category
func (C *Catalog) Height(category string) int {
	tree, ok := C.trees[category]
	if !ok {
		return -1
	}

	return tree.Height()
}

// TopK - Returns the k most powerful spells of a category in descending power level order.
// It returns nil for an unknown category.
func (C *Catalog) TopK(category string, k int) []spell.Spell {
	tree, ok := C.trees[category]
	if !ok {
		return nil
	}

	return tree.TopK(k)
}

// Categories - Returns the names of all categories in sorted order
func (C *Catalog) Categories() (categories []string) {
	categories = make([]string, 0, len(C.trees))
	for category := range C.trees {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	return
}

// tree - Returns the tree of a category, used by Validate and Dump
func (C *Catalog) tree(category string) (tree *avl.Tree, err error) {
	tree, ok := C.trees[category]
	if !ok {
		err = fmt.Errorf("category %q: %w", category, crt.NoRecordFound{})
	}

	return
}
