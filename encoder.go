package huffman

import (
	"errors"
	"fmt"
)

// ErrMissingCode is returned by Encode when the input contains a byte the
// code table has no entry for.  A table derived from the same input always
// covers every byte, so the error is reachable only with a foreign table.
var ErrMissingCode = errors.New("huffman: no code for input byte")

// Encode looks up the code for each input byte and appends its bits, in
// input order, to a fresh bit stream.  Empty input yields an empty stream
// without consulting the table.
func Encode(data []byte, ct CodeTable) (*Bitstream, error) {
	bs := new(Bitstream)
	if len(data) == 0 {
		return bs, nil
	}
	for _, b := range data {
		hc, ok := ct[b]
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x", ErrMissingCode, b)
		}
		bs.AppendCode(hc)
	}
	return bs, nil
}
