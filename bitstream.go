package huffman

import (
	"fmt"
	"strings"
)

// Bitstream is an append-only sequence of bits packed least significant
// bit first: bit i lives in byte i/8 at bit position i%8.  Bits past Len()
// in the final byte are always zero, so two streams with equal Len and
// equal Bytes carry identical bits.
type Bitstream struct {
	bits []byte
	n    int
}

// BitstreamFromBytes reconstitutes a stream from packed bytes and an exact
// bit count.  The buffer must hold at least nbits bits or ErrTruncated is
// returned.  Padding bits in the final byte are masked to zero, so input
// from writers that leave garbage in the padding still compares equal to a
// locally built stream.
func BitstreamFromBytes(p []byte, nbits int) (*Bitstream, error) {
	if nbits < 0 || len(p) < bytesForBits(nbits) {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, have %d",
			ErrTruncated, nbits, bytesForBits(nbits), len(p))
	}
	bits := make([]byte, bytesForBits(nbits))
	copy(bits, p)
	if rem := nbits % 8; rem != 0 {
		bits[len(bits)-1] &= byte(1<<uint(rem)) - 1
	}
	return &Bitstream{bits: bits, n: nbits}, nil
}

// Append adds one bit to the end of the stream.  Any nonzero bit value
// counts as 1.
func (bs *Bitstream) Append(bit byte) {
	if bs.n%8 == 0 {
		bs.bits = append(bs.bits, 0)
	}
	if bit != 0 {
		bs.bits[bs.n/8] |= 1 << uint(bs.n%8)
	}
	bs.n++
}

// AppendCode appends all of a code's bits in path order, first to last.
func (bs *Bitstream) AppendCode(hc Code) {
	for i := 0; i < int(hc.Size); i++ {
		bs.Append(hc.Bit(i))
	}
}

// Bit returns bit i of the stream, 0 or 1.
func (bs *Bitstream) Bit(i int) byte {
	return bs.bits[i/8] >> uint(i%8) & 1
}

// Len returns the number of valid bits.
func (bs *Bitstream) Len() int {
	return bs.n
}

// Bytes returns the packed bits, 8 per byte, with the final byte
// zero-padded on the high end when Len is not a multiple of 8.  The slice
// aliases the stream's storage; callers must not modify it.
func (bs *Bitstream) Bytes() []byte {
	return bs.bits
}

// String returns the bits as a string of '0' and '1' characters, first bit
// leftmost.
func (bs *Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.n)
	for i := 0; i < bs.n; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	return sb.String()
}

var _ fmt.Stringer = (*Bitstream)(nil)
