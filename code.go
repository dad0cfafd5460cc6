package huffman

import (
	"fmt"
	"strconv"
)

// Code represents the bit sequence assigned to one symbol.
type Code struct {
	// Size holds the number of valid bits.  Every assigned code has
	// Size >= 1.
	Size byte

	// Bits holds the actual values of the bits.  The first bit on the
	// root-to-leaf path is the most significant of the low Size bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the code, counting from the start of the
// root-to-leaf path.
func (hc Code) Bit(i int) byte {
	return byte(hc.Bits>>(uint(hc.Size)-1-uint(i))) & 1
}

// push returns the code extended by one more path bit.
func (hc Code) push(bit byte) Code {
	return MakeCode(hc.Size+1, hc.Bits<<1|uint64(bit))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
