package huffman

import (
	"container/heap"
	"errors"
)

// ErrEmptyInput is returned by BuildTree when the frequency table has no
// entries.  Callers normally short-circuit empty input long before a tree
// is built; see Codec.
var ErrEmptyInput = errors.New("huffman: empty input")

// Node is one node of a Huffman tree.  A leaf owns a Symbol and its count;
// an internal node owns exactly two children and a Weight equal to the sum
// of its children's weights.  Trees are built bottom-up by BuildTree and
// never mutated afterward.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree combines the table's symbols into a single-rooted prefix-code
// tree: the two lowest-weight nodes are repeatedly extracted and merged
// under a new internal node (first extracted on the left) until one node
// remains.  A single-entry table yields that entry's leaf as the root.
//
// Ties on weight are broken by insertion order, with the leaves seeded in
// ascending symbol order, so identical input always produces an identical
// tree.
//
func BuildTree(ft FrequencyTable) (*Node, error) {
	if len(ft) == 0 {
		return nil, ErrEmptyInput
	}

	var h nodeHeap
	for _, symbol := range ft.Symbols() {
		h.insert(&Node{Symbol: symbol, Weight: ft[symbol]})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		})
	}
	return heap.Pop(&h).(*Node), nil
}

// type nodeHeap {{{

// nodeHeap is a min-heap ordered by (weight, insertion sequence).  The
// sequence number makes extraction order fully deterministic when weights
// collide.
type nodeHeap struct {
	list []heapEntry
	seq  uint64
}

type heapEntry struct {
	node *Node
	seq  uint64
}

func (h *nodeHeap) insert(n *Node) {
	h.list = append(h.list, heapEntry{n, h.seq})
	h.seq++
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.insert(x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x.node
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
