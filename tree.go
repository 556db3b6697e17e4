package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// node is one node of a Huffman tree: either a *leaf carrying a Symbol, or
// a *branch carrying exactly two children.  Consumers switch exhaustively
// over the two concrete types.
type node interface {
	freq() uint64
}

// leaf is a terminal node owning one Symbol and its occurrence count.
type leaf struct {
	sym   Symbol
	count uint64
}

// branch is an interior node owning its two children.  Its count is the
// saturating sum of the counts beneath it.
type branch struct {
	count uint64
	left  node
	right node
}

func (l *leaf) freq() uint64   { return l.count }
func (b *branch) freq() uint64 { return b.count }

var (
	_ node = (*leaf)(nil)
	_ node = (*branch)(nil)
)

// buildTree assembles the Huffman tree for a frequency table: one leaf per
// nonzero count goes into a minheap keyed by count, and the two lowest
// nodes are repeatedly merged under a new branch until a single root
// remains.
//
// Ties are deterministic: the heap orders by (count, insertion sequence),
// and the leaves are inserted in ascending symbol order before any merged
// branch exists, so equal counts resolve to the lower symbol first and to
// older nodes before newer ones.  The tie-break affects which exact bit
// sequence each symbol receives, never the encoded size, and the decoder
// runs this same construction on the same transmitted table, so both sides
// always agree.
func buildTree(ft *FrequencyTable) node {
	items := make([]heapItem, 0, ft.Leaves())
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if count := ft[sym]; count != 0 {
			items = append(items, heapItem{&leaf{sym: sym, count: count}, len(items)})
		}
	}
	assert.Assertf(len(items) != 0, "frequency table has no nonzero counts")

	h := treeHeap{items}
	h.Init()
	seq := len(items)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		// Compute the merged count using saturating addition.
		sum := a.node.freq() + b.node.freq()
		if sum < a.node.freq() {
			sum = math.MaxUint64
		}

		heap.Push(&h, heapItem{&branch{count: sum, left: a.node, right: b.node}, seq})
		seq++
	}
	root := heap.Pop(&h).(heapItem)
	return root.node
}

// deriveCodes walks the tree depth first, assigning each leaf the bit path
// that reaches it: 0 descends left, 1 descends right.  It also reports the
// shortest and longest code sizes assigned.  A root that is itself a leaf
// receives the empty code; that happens only for the degenerate table whose
// sole nonzero count is the end-of-stream marker, i.e. zero-length input.
func deriveCodes(root node) (codes []Code, minSize byte, maxSize byte) {
	codes = make([]Code, NumSymbols)
	var hasMinMax bool

	var walk func(nd node, hc Code)
	walk = func(nd node, hc Code) {
		switch v := nd.(type) {
		case *leaf:
			codes[v.sym] = hc
			if !hasMinMax {
				hasMinMax = true
				minSize = hc.Size
				maxSize = hc.Size
			} else if minSize > hc.Size {
				minSize = hc.Size
			} else if maxSize < hc.Size {
				maxSize = hc.Size
			}
		case *branch:
			assert.Assertf(hc.Size < 64, "code size %d exceeds 64 bits", hc.Size+1)
			walk(v.left, MakeCode(hc.Size+1, hc.Bits<<1))
			walk(v.right, MakeCode(hc.Size+1, hc.Bits<<1|1))
		}
	}
	walk(root, Code{})
	return codes, minSize, maxSize
}

// depthRange reports the depths of the shallowest and deepest leaves.
// Depth is tracked as an int, so the walk stays correct even for trees
// built from adversarial tables whose codes would not fit in 64 bits.
func depthRange(root node) (minSize byte, maxSize byte) {
	var hasMinMax bool

	var walk func(nd node, depth int)
	walk = func(nd node, depth int) {
		switch v := nd.(type) {
		case *leaf:
			size := byte(depth)
			if !hasMinMax {
				hasMinMax = true
				minSize = size
				maxSize = size
			} else if minSize > size {
				minSize = size
			} else if maxSize < size {
				maxSize = size
			}
		case *branch:
			walk(v.left, depth+1)
			walk(v.right, depth+1)
		}
	}
	walk(root, 0)
	return minSize, maxSize
}

// dumpCodes appends one "Decode(path) = symbol" line per leaf, rendering
// each path as a 0/1 string so that arbitrarily deep trees print
// correctly.  Left-first traversal yields lexicographic path order.
func dumpCodes(buf *bytes.Buffer, nd node, prefix []byte) {
	switch v := nd.(type) {
	case *leaf:
		fmt.Fprintf(buf, "\tDecode(%q) = %s\n", prefix, v.sym)
	case *branch:
		dumpCodes(buf, v.left, append(prefix, '0'))
		dumpCodes(buf, v.right, append(prefix, '1'))
	}
}

// type heapItem + type treeHeap {{{

type heapItem struct {
	node node
	seq  int
}

type treeHeap struct {
	list []heapItem
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq() != b.node.freq() {
		return a.node.freq() < b.node.freq()
	}
	return a.seq < b.seq
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
