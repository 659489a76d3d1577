package avl

// height - Returns the cached height of n, an absent subtree has height -1
func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight - Recomputes the height of n from its children
func updateHeight(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balance - Returns height(right) - height(left)
func balance(n *node) int {
	return height(n.right) - height(n.left)
}

// rebalance - Refreshes the height of n and rotates if it is out of balance.
// It returns the node now rooting the subtree.
func rebalance(n *node) *node {
	updateHeight(n)

	switch b := balance(n); {
	case b > 1:
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)

	case b < -1:
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	return n
}

// rotateRight - Lifts the left child of y, y becomes its right child
func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y

	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft - Lifts the right child of y, y becomes its left child
func rotateLeft(y *node) *node {
	x := y.right
	y.right = x.left
	x.left = y

	updateHeight(y)
	updateHeight(x)

	return x
}
