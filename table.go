package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// maxCodeBits is the longest code BuildCodeTable can assign.  Forcing a
// deeper tree takes a Fibonacci-skewed input tens of terabytes long, so
// exceeding the cap indicates a corrupted tree rather than real data.
const maxCodeBits = 64

// CodeTable maps each symbol observed in the input to its assigned code.
// Tables built from a tree are prefix-free: no code is a prefix of
// another.
type CodeTable map[Symbol]Code

// BuildCodeTable walks the tree depth-first, left before right, appending
// a 0 bit for each left edge and a 1 bit for each right edge, and records
// the accumulated path at each leaf.  A leaf root (single-symbol input)
// receives the fixed 1-bit code "0".  A nil root yields an empty table.
func BuildCodeTable(root *Node) CodeTable {
	ct := make(CodeTable)
	if root == nil {
		return ct
	}
	if root.Leaf() {
		ct[root.Symbol] = MakeCode(1, 0)
		return ct
	}
	walkTree(ct, root, Code{})
	return ct
}

func walkTree(ct CodeTable, n *Node, prefix Code) {
	if n.Leaf() {
		ct[n.Symbol] = prefix
		return
	}
	assert.Assertf(prefix.Size < maxCodeBits, "tree deeper than %d levels", maxCodeBits)
	walkTree(ct, n.Left, prefix.push(0))
	walkTree(ct, n.Right, prefix.push(1))
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer, one symbol per line in ascending byte order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	symbols := make([]Symbol, 0, len(ct))
	for symbol := range ct {
		symbols = append(symbols, symbol)
	}
	sortSymbols(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tCode(%q) = %s\n", symbol, ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
