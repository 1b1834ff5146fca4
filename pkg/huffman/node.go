package huffman

// node is a node in a Huffman tree: either a leaf holding one symbol or a
// parent holding exactly two children. Nodes are never mutated after
// construction, so children may be shared by plain pointer.
type node struct {
	left  *node
	right *node
	sym   rune
	leaf  bool
}

func newParent(left, right *node) *node {
	return &node{left: left, right: right}
}

func newLeaf(sym rune) *node {
	return &node{sym: sym, leaf: true}
}
