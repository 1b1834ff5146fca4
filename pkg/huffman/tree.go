// Package huffman builds prefix-free binary codes from symbol frequencies
// and encodes text against them. The tree is built once by greedy merging of
// the two lowest-weight entries; codes are the root-to-leaf paths, bit 0 for
// left and bit 1 for right.
package huffman

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoSymbols is returned when construction is attempted from an
	// empty text or frequency table.
	ErrNoSymbols = errors.New("No symbols to build a tree from")

	// ErrInsufficientNodes is returned if a merge step finds fewer than
	// two nodes to combine. This guards an internal invariant and cannot
	// be reached from a valid frequency table.
	ErrInsufficientNodes = errors.New("Attempt to combine fewer than two nodes")

	// ErrMismatchedLengths is returned by NewFromWeights when the symbol
	// and weight slices have different lengths.
	ErrMismatchedLengths = errors.New("Mismatched symbol and weight lengths")
)

// SymbolNotFoundError reports a symbol that has no code in the lookup
// table, i.e. one that never occurred in the text the tree was built from.
type SymbolNotFoundError struct {
	Symbol rune
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("Symbol %q not found in lookup table", e.Symbol)
}

// Tree holds the symbol-to-code lookup table derived from a Huffman tree.
// The tree itself is discarded once the table is generated. A Tree is
// immutable and safe for concurrent readers.
type Tree struct {
	// Dense table indexed by rune value. The alphabet is a bounded set
	// of code points, so this trades a little memory for lookups with no
	// hashing cost.
	lookup []*Bits
}

// entry is a working-set element during construction.
type entry struct {
	weight float64
	node   *node
}

// New constructs a Tree from the symbol frequencies of sampleText.
func New(sampleText string) (*Tree, error) {
	return NewFromFrequencies(Frequencies(sampleText))
}

// NewFromFrequencies constructs a Tree from a symbol-to-count table.
// Symbols with a non-positive count are excluded: they can never occur and
// must not consume a code.
func NewFromFrequencies(freqs map[rune]int) (*Tree, error) {
	entries := make([]entry, 0, len(freqs))
	for sym, n := range freqs {
		if n > 0 {
			entries = append(entries, entry{float64(n), newLeaf(sym)})
		}
	}
	return build(entries)
}

// NewFromWeights constructs a Tree from parallel symbol and weight slices,
// for callers that carry normalized probabilities instead of counts. The
// slices must have equal lengths. Symbols with a non-positive weight are
// excluded.
func NewFromWeights(symbols []rune, weights []float64) (*Tree, error) {
	if len(symbols) != len(weights) {
		return nil, ErrMismatchedLengths
	}

	entries := make([]entry, 0, len(symbols))
	for i, sym := range symbols {
		if weights[i] > 0 {
			entries = append(entries, entry{weights[i], newLeaf(sym)})
		}
	}
	return build(entries)
}

// Frequencies counts symbol occurrences in text. Empty input yields an
// empty table.
func Frequencies(text string) map[rune]int {
	freqs := make(map[rune]int)
	for _, sym := range text {
		freqs[sym]++
	}
	return freqs
}

// build runs the greedy merge loop over the seeded working set and derives
// the lookup table from the finished tree.
func build(working []entry) (*Tree, error) {
	if len(working) == 0 {
		return nil, ErrNoSymbols
	}

	// Ascending by weight; equal weights ordered by symbol value so
	// repeated construction assigns identical codes.
	sort.Slice(working, func(i, j int) bool {
		if working[i].weight != working[j].weight {
			return working[i].weight < working[j].weight
		}
		return working[i].node.sym < working[j].node.sym
	})

	for len(working) > 1 {
		var err error
		if working, err = merge(working); err != nil {
			return nil, err
		}
	}

	tree := &Tree{lookup: make([]*Bits, maxSymbol(working[0].node)+1)}
	tree.traverse(working[0].node, NewBits())
	return tree, nil
}

// merge combines the two lowest-weight entries into a parent node and
// re-inserts it at the position that keeps the set sorted. The first entry
// removed becomes the left child, the second the right.
func merge(working []entry) ([]entry, error) {
	if len(working) < 2 {
		return nil, ErrInsufficientNodes
	}

	first, second := working[0], working[1]
	working = working[2:]

	merged := entry{
		weight: first.weight + second.weight,
		node:   newParent(first.node, second.node),
	}

	// First position whose weight is not below the merged weight, so a
	// tie inserts ahead of existing equal-weight entries.
	pos := sort.Search(len(working), func(i int) bool {
		return working[i].weight >= merged.weight
	})

	working = append(working, entry{})
	copy(working[pos+1:], working[pos:])
	working[pos] = merged
	return working, nil
}

// maxSymbol returns the largest symbol value in the subtree, which bounds
// the dense lookup table size.
func maxSymbol(n *node) rune {
	if n.leaf {
		return n.sym
	}
	left, right := maxSymbol(n.left), maxSymbol(n.right)
	if left > right {
		return left
	}
	return right
}

// traverse walks the subtree depth first, recording each leaf's accumulated
// root-to-leaf path as its code. A single-leaf root gets the empty code.
func (t *Tree) traverse(n *node, code *Bits) {
	if n.leaf {
		t.lookup[n.sym] = code
		return
	}

	left := code.clone()
	left.Add(false)
	t.traverse(n.left, left)

	right := code.clone()
	right.Add(true)
	t.traverse(n.right, right)
}

// Code returns the code assigned to sym and whether sym is present in the
// lookup table. The returned value must not be modified.
func (t *Tree) Code(sym rune) (*Bits, bool) {
	if int(sym) >= len(t.lookup) || sym < 0 || t.lookup[sym] == nil {
		return nil, false
	}
	return t.lookup[sym], true
}

// Symbols returns every symbol present in the lookup table, in ascending
// order.
func (t *Tree) Symbols() []rune {
	syms := make([]rune, 0, len(t.lookup))
	for sym, code := range t.lookup {
		if code != nil {
			syms = append(syms, rune(sym))
		}
	}
	return syms
}

// Encode maps text to the concatenation, in input order, of each symbol's
// code. Encoding a symbol the tree has never seen fails with a
// *SymbolNotFoundError naming it; no partial sequence is returned. The
// empty string encodes to an empty sequence.
func (t *Tree) Encode(text string) (*Bits, error) {
	encoded := NewBits()
	for _, sym := range text {
		code, ok := t.Code(sym)
		if !ok {
			return nil, &SymbolNotFoundError{Symbol: sym}
		}
		encoded.Append(code)
	}
	return encoded, nil
}
