package huffman

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// ErrTruncated indicates a bit stream that ends partway through a code, or
// a byte buffer shorter than its declared bit count.  Compression is
// all-or-nothing per buffer; there are no partial results.
var ErrTruncated = errors.New("huffman: truncated bit stream")

// ErrCorrupt indicates a bit pattern that the matching encoder cannot have
// produced.
var ErrCorrupt = errors.New("huffman: corrupt bit stream")

// ErrTableInconsistent indicates a code table that is not prefix-free or
// contains duplicate codes, which no Huffman tree can have produced.
var ErrTableInconsistent = errors.New("huffman: inconsistent code table")

// Decoder reconstructs original bytes from a bit stream by walking a
// Huffman tree.
type Decoder struct {
	root *Node
}

// NewDecoder returns a Decoder that walks the given tree.  A nil root is
// valid and decodes only the empty stream.
func NewDecoder(root *Node) *Decoder {
	return &Decoder{root: root}
}

// NewFrequencyDecoder rebuilds the tree from a frequency table, the form
// carried by self-describing archives.  Tree construction is
// deterministic, so the rebuilt tree is identical to the one the encoder
// derived from the same table.  An empty table yields a nil-root decoder.
func NewFrequencyDecoder(ft FrequencyTable) *Decoder {
	if len(ft) == 0 {
		return &Decoder{}
	}
	root, err := BuildTree(ft)
	assert.Assertf(err == nil, "BuildTree failed on a non-empty table: %v", err)
	return &Decoder{root: root}
}

// NewTableDecoder rebuilds a decoding tree from a code table alone by
// inserting each code's root-to-leaf path.  The table must be prefix-free
// and duplicate-free or ErrTableInconsistent is returned.  An empty table
// yields a nil-root decoder.
func NewTableDecoder(ct CodeTable) (*Decoder, error) {
	if len(ct) == 0 {
		return &Decoder{}, nil
	}

	symbols := make([]Symbol, 0, len(ct))
	for symbol := range ct {
		symbols = append(symbols, symbol)
	}
	sortSymbols(symbols)

	root := new(Node)
	leaves := make(map[*Node]bool, len(ct))
	for _, symbol := range symbols {
		hc := ct[symbol]
		if hc.Size == 0 {
			return nil, fmt.Errorf("%w: empty code for %q", ErrTableInconsistent, symbol)
		}
		cursor := root
		for i := 0; i < int(hc.Size); i++ {
			if leaves[cursor] {
				return nil, fmt.Errorf("%w: code %s for %q runs through another code", ErrTableInconsistent, hc, symbol)
			}
			next := &cursor.Left
			if hc.Bit(i) != 0 {
				next = &cursor.Right
			}
			if *next == nil {
				*next = new(Node)
			}
			cursor = *next
		}
		if leaves[cursor] || !cursor.Leaf() {
			return nil, fmt.Errorf("%w: code %s for %q collides with another code", ErrTableInconsistent, hc, symbol)
		}
		cursor.Symbol = symbol
		leaves[cursor] = true
	}
	return &Decoder{root: root}, nil
}

// Decode walks the tree over the stream's bits: descend left on 0, right
// on 1, and at each leaf emit its symbol and reset to the root.  The
// cursor must be back at the root when the bits run out or the stream was
// cut mid-code (ErrTruncated).  An empty stream decodes to empty bytes
// without any traversal, even on a nil-root decoder.
func (d *Decoder) Decode(bs *Bitstream) ([]byte, error) {
	if bs == nil || bs.Len() == 0 {
		return []byte{}, nil
	}
	if d.root == nil {
		return nil, fmt.Errorf("%w: %d bits for an empty alphabet", ErrCorrupt, bs.Len())
	}

	if d.root.Leaf() {
		// Single-symbol tree: the sole code is the 1-bit "0", so the
		// bit count is the symbol count and every bit must be 0.
		out := make([]byte, 0, bs.Len())
		for i := 0; i < bs.Len(); i++ {
			if bs.Bit(i) != 0 {
				return nil, fmt.Errorf("%w: unexpected 1 bit at %d", ErrCorrupt, i)
			}
			out = append(out, d.root.Symbol)
		}
		return out, nil
	}

	out := []byte{}
	cursor := d.root
	for i := 0; i < bs.Len(); i++ {
		if bs.Bit(i) == 0 {
			cursor = cursor.Left
		} else {
			cursor = cursor.Right
		}
		if cursor == nil {
			return nil, fmt.Errorf("%w: no path for bit %d", ErrCorrupt, i)
		}
		if cursor.Leaf() {
			out = append(out, cursor.Symbol)
			cursor = d.root
		}
	}
	if cursor != d.root {
		return nil, fmt.Errorf("%w: bits ran out mid-code", ErrTruncated)
	}
	return out, nil
}
