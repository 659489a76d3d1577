package avl

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/spell"
	"io"
	"strings"
)

// Validate - Walks the whole tree and checks that every cached height is correct, that every node is balanced
// and that the tree is ordered. It also checks that the number of nodes equals Size.
func (T *Tree) Validate() (err error) {
	var count int
	_, err = T.validateNode(T.root, nil, nil, &count)
	if err != nil {
		return
	}

	if count != T.size {
		err = fmt.Errorf("tree %q holds %d nodes but size is %d", T.category, count, T.size)
	}

	return
}

// validateNode - Validates the subtree of n, where every spell must order strictly between low and high (when given)
func (T *Tree) validateNode(n *node, low, high *spell.Spell, count *int) (h int, err error) {
	if n == nil {
		return -1, nil
	}
	*count++

	if low != nil && T.compare(*low, n.spell) >= 0 {
		err = fmt.Errorf("spell %s is not ordered after %s", n.spell.Name, low.Name)
		return
	}
	if high != nil && T.compare(n.spell, *high) >= 0 {
		err = fmt.Errorf("spell %s is not ordered before %s", n.spell.Name, high.Name)
		return
	}

	hl, err := T.validateNode(n.left, low, &n.spell, count)
	if err != nil {
		return
	}
	hr, err := T.validateNode(n.right, &n.spell, high, count)
	if err != nil {
		return
	}

	h = 1 + max(hl, hr)
	if n.height != h {
		err = fmt.Errorf("spell %s has cached height %d but height %d", n.spell.Name, n.height, h)
		return
	}
	if b := hr - hl; b < -1 || b > 1 {
		err = fmt.Errorf("spell %s is out of balance (%d)", n.spell.Name, b)
		return
	}

	return
}

// Dump - Writes the tree sideways to w, highest power level first, one spell per line indented by depth
func (T *Tree) Dump(w io.Writer) {
	fmt.Fprintf(w, "### %s: size(%d), height(%d)\n", T.category, T.size, T.Height())
	T.root.dumpRec(w, 0)
}

// dumpRec - rec-descent the tree, right subtree first
func (n *node) dumpRec(w io.Writer, depth int) {
	if n == nil {
		return
	}

	n.right.dumpRec(w, depth+1)
	fmt.Fprintf(w, "%s%d %s [h=%d]\n", strings.Repeat("    ", depth), n.spell.PowerLevel, n.spell.Name, n.height)
	n.left.dumpRec(w, depth+1)
}
