package wordtree

// node is a position in a tree. It owns its children, which are kept in the order
// they were added; sibling values are always distinct.
type node[T comparable] struct {
	value    T
	children []*node[T]
}

func newNode[T comparable](value T) *node[T] {
	return &node[T]{value: value}
}

// findChildIndex returns the index of the child holding value.
func (n *node[T]) findChildIndex(value T) (int, bool) {
	for idx, child := range n.children {
		if child.value == value {
			return idx, true
		}
	}
	return -1, false
}

// navigateTo returns the index of the child holding value, appending a new leaf
// if there is none yet.
func (n *node[T]) navigateTo(value T) int {
	if idx, ok := n.findChildIndex(value); ok {
		return idx
	}
	n.children = append(n.children, newNode(value))
	return len(n.children) - 1
}

func (n *node[T]) child(idx int) *node[T] {
	return n.children[idx]
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}
