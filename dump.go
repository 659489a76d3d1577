package spellcatalog

import (
	"fmt"
	"io"
)

// Validate - Checks the balance, ordering and size bookkeeping of every category tree
func (C *Catalog) Validate() (err error) {
	var total int
	for _, category := range C.Categories() {
		tree, _ := C.tree(category)
		if err = tree.Validate(); err != nil {
			return
		}
		total += tree.Size()
	}

	if total != C.numSpells {
		err = fmt.Errorf("categories hold %d spells but the catalog counts %d", total, C.numSpells)
	}

	return
}

// Dump - Writes the tree of a category sideways to w
func (C *Catalog) Dump(w io.Writer, category string) (err error) {
	tree, err := C.tree(category)
	if err != nil {
		return
	}

	tree.Dump(w)

	return
}
