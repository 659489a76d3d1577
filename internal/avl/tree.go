package avl

import (
	"cmp"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/spell"
	"iter"
)

// Tree - A self balancing (AVL) binary search tree holding the spells of one category ordered by power level.
// The tree is created with its first spell and is never empty. How spells with an already stored power level are
// handled is decided by the crt.DuplicatePolicy given at creation.
type Tree struct {
	root     *node
	size     int
	category string
	policy   crt.DuplicatePolicy
}

// node - Holds one spell, its two optional children and the cached height of its subtree (leaf height is 0)
type node struct {
	spell  spell.Spell
	left   *node
	right  *node
	height int
}

// New - Returns a pointer to a new Tree holding one spell, the tree category is fixed to the spell's category
//   - first is the spell to put in the root
//   - policy decides what Insert does with a spell having an already stored power level
func New(first spell.Spell, policy crt.DuplicatePolicy) *Tree {
	return &Tree{
		root:     &node{spell: first},
		size:     1,
		category: first.Category,
		policy:   policy,
	}
}

// Category - Returns the category of the tree
func (T *Tree) Category() string {
	return T.category
}

// Policy - Returns the duplicate policy of the tree
func (T *Tree) Policy() crt.DuplicatePolicy {
	return T.policy
}

// Size - Returns the number of spells stored in the tree
func (T *Tree) Size() int {
	return T.size
}

// Height - Returns the height of the tree, a tree with only a root has height 0
func (T *Tree) Height() int {
	return height(T.root)
}

// Insert - Inserts a spell and rebalances the tree along the insertion path.
//   - s is the spell to insert, it must belong to the tree's category
//
// It returns:
//   - err is nil if the spell was stored (or overwrote a stored one under crt.OverwriteEqualPower), otherwise
//     crt.DuplicateKey if the policy rejected it or crt.CategoryMismatch if it belongs to another category
func (T *Tree) Insert(s spell.Spell) (err error) {
	if s.Category != T.category {
		err = crt.CategoryMismatch{}
		return
	}

	var inserted bool
	T.root, inserted, err = T.insertNode(T.root, s)
	if inserted {
		T.size++
	}

	return
}

// Search - Returns the spell with the given name and power level.
//   - name is the name of the spell
//   - powerLevel is the power level of the spell
//
// It returns:
//   - s is the matching spell if found
//   - found is false when no spell matches both name and power level
func (T *Tree) Search(name string, powerLevel int) (s spell.Spell, found bool) {
	key := spell.Spell{Name: name, PowerLevel: powerLevel}

	n := T.root
	for n != nil {
		c := T.compare(key, n.spell)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			if n.spell.Name == name {
				s = n.spell
				found = true
			}
			return
		}
	}

	return
}

// TopK - Returns the k spells with the highest power levels in descending order.
// Fewer than k spells are returned when the tree holds fewer, and none when k is not positive.
func (T *Tree) TopK(k int) []spell.Spell {
	topK := make([]spell.Spell, 0, max(0, min(k, T.size)))
	if k <= 0 {
		return topK
	}

	for s := range T.Descending() {
		topK = append(topK, s)
		if len(topK) == k {
			break
		}
	}

	return topK
}

// Descending - Returns an iterator over all spells from the highest to the lowest power level
func (T *Tree) Descending() iter.Seq[spell.Spell] {
	return func(yield func(spell.Spell) bool) {
		T.root.descending(yield)
	}
}

// descending - Walks right subtree, node and left subtree, stops as soon as yield returns false
func (n *node) descending(yield func(spell.Spell) bool) bool {
	if n == nil {
		return true
	}

	return n.right.descending(yield) && yield(n.spell) && n.left.descending(yield)
}

// compare - Orders spells by power level, and by name as well under crt.TieBreakByName
func (T *Tree) compare(a, b spell.Spell) int {
	if c := cmp.Compare(a.PowerLevel, b.PowerLevel); c != 0 || T.policy != crt.TieBreakByName {
		return c
	}

	return cmp.Compare(a.Name, b.Name)
}

// insertNode - Recursive insertion returning the new root of the subtree and whether a node was added.
// Subtrees that did not grow are returned untouched.
func (T *Tree) insertNode(n *node, s spell.Spell) (result *node, inserted bool, err error) {
	if n == nil {
		return &node{spell: s}, true, nil
	}

	switch c := T.compare(s, n.spell); {
	case c < 0:
		n.left, inserted, err = T.insertNode(n.left, s)
	case c > 0:
		n.right, inserted, err = T.insertNode(n.right, s)
	default:
		if T.policy == crt.OverwriteEqualPower {
			n.spell = s
			return n, false, nil
		}
		return n, false, crt.DuplicateKey{}
	}

	if !inserted {
		return n, false, err
	}

	return rebalance(n), true, nil
}
