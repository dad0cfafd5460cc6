package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Codec holds the frequency table, tree, and code table derived from one
// input buffer and encodes or decodes against them.  It is built once per
// input and read-only afterward; the reverse path reuses the same tree, so
// a round-trip needs no persisted table.
type Codec struct {
	data []byte
	freq FrequencyTable
	root *Node
	ct   CodeTable
}

// New derives the full coding state for data.  Empty input is valid: the
// resulting Codec encodes to an empty stream and decodes an empty stream
// back to empty bytes.
func New(data []byte) *Codec {
	c := &Codec{data: data, freq: CountFrequencies(data)}
	if len(c.freq) == 0 {
		c.ct = make(CodeTable)
		return c
	}
	root, err := BuildTree(c.freq)
	assert.Assertf(err == nil, "BuildTree failed on a non-empty table: %v", err)
	c.root = root
	c.ct = BuildCodeTable(root)
	return c
}

// Encode concatenates the code bits for the construction input.  It
// cannot fail: the table covers every input byte by construction.
func (c *Codec) Encode() *Bitstream {
	bs, err := Encode(c.data, c.ct)
	assert.Assertf(err == nil, "own code table is incomplete: %v", err)
	return bs
}

// Decode reconstructs original bytes from a stream encoded against this
// Codec's table.
func (c *Codec) Decode(bs *Bitstream) ([]byte, error) {
	return NewDecoder(c.root).Decode(bs)
}

// Frequencies returns the frequency table observed at construction.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freq
}

// CodeTable returns the code assignment derived at construction.  For
// non-empty input every distinct input byte has exactly one entry.
func (c *Codec) CodeTable() CodeTable {
	return c.ct
}

// Tree returns the root of the session's Huffman tree, or nil for empty
// input.
func (c *Codec) Tree() *Node {
	return c.root
}
