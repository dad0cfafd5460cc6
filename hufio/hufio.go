// Package hufio reads and writes the .huff container formats: the minimal
// payload, which frames a packed bit stream with an exact bit count, and
// the self-describing archive variant, which prepends the frequency table
// so the stream can be decoded without the encoding session.
package hufio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tembra/huffman"
)

// ErrTruncatedPayload indicates a payload whose bit-count header claims
// more bits than the body carries, or a header cut short.
var ErrTruncatedPayload = errors.New("hufio: truncated payload")

// ErrInvalidHeader indicates a missing or malformed archive preamble.
var ErrInvalidHeader = errors.New("hufio: invalid archive header")

// archiveMagic begins every self-describing archive.  Minimal payloads
// have no magic: their first 8 bytes are the bit count itself.
var archiveMagic = [4]byte{'H', 'U', 'F', '1'}

// WriteBitstream writes the minimal container: an 8-byte little-endian
// count of valid bits, then the packed bits, final byte zero-padded on the
// high end when the count is not a multiple of 8.  The count is what lets
// a reader tell payload bits from padding.
func WriteBitstream(w io.Writer, bs *huffman.Bitstream) error {
	var header [8]byte
	binary.LittleEndian.PutUint64(header[:], uint64(bs.Len()))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(bs.Bytes())
	return err
}

// ReadBitstream reads a minimal container written by WriteBitstream.  The
// reader consumes exactly the declared number of bits; trailing bytes
// beyond them are ignored.
func ReadBitstream(r io.Reader) (*huffman.Bitstream, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if atEOF(err) {
			return nil, fmt.Errorf("%w: short bit-count header", ErrTruncatedPayload)
		}
		return nil, err
	}
	nbits := binary.LittleEndian.Uint64(header[:])

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if nbits > uint64(len(body))*8 {
		return nil, fmt.Errorf("%w: header claims %d bits, body has %d bytes",
			ErrTruncatedPayload, nbits, len(body))
	}
	return huffman.BitstreamFromBytes(body, int(nbits))
}

// WriteArchive writes the self-describing variant: the "HUF1" magic, one
// reserved zero byte, a little-endian uint16 count of distinct symbols,
// one entry per symbol in ascending byte order (the byte value followed by
// its little-endian uint64 frequency), and finally the minimal payload.
func WriteArchive(w io.Writer, ft huffman.FrequencyTable, bs *huffman.Bitstream) error {
	var head [7]byte
	copy(head[0:4], archiveMagic[:])
	binary.LittleEndian.PutUint16(head[5:7], uint16(len(ft)))
	if _, err := w.Write(head[:]); err != nil {
		return err
	}

	var entry [9]byte
	for _, symbol := range ft.Symbols() {
		entry[0] = symbol
		binary.LittleEndian.PutUint64(entry[1:], ft[symbol])
		if _, err := w.Write(entry[:]); err != nil {
			return err
		}
	}
	return WriteBitstream(w, bs)
}

// ReadArchive reads an archive written by WriteArchive and returns the
// embedded frequency table and the bit stream.  The table is rejected with
// ErrInvalidHeader when the magic is wrong, the reserved byte is nonzero,
// the symbol count exceeds the alphabet, an entry repeats a symbol, or a
// frequency is zero (the writer never emits entries for absent symbols).
func ReadArchive(r io.Reader) (huffman.FrequencyTable, *huffman.Bitstream, error) {
	var head [7]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if atEOF(err) {
			return nil, nil, fmt.Errorf("%w: short preamble", ErrInvalidHeader)
		}
		return nil, nil, err
	}
	if !bytes.Equal(head[0:4], archiveMagic[:]) {
		return nil, nil, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, head[0:4])
	}
	if head[4] != 0 {
		return nil, nil, fmt.Errorf("%w: reserved byte is 0x%02x", ErrInvalidHeader, head[4])
	}
	count := binary.LittleEndian.Uint16(head[5:7])
	if count > huffman.AlphabetSize {
		return nil, nil, fmt.Errorf("%w: %d symbols exceeds the alphabet", ErrInvalidHeader, count)
	}

	ft := make(huffman.FrequencyTable, count)
	var entry [9]byte
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			if atEOF(err) {
				return nil, nil, fmt.Errorf("%w: short frequency table", ErrInvalidHeader)
			}
			return nil, nil, err
		}
		symbol := entry[0]
		freq := binary.LittleEndian.Uint64(entry[1:])
		if freq == 0 {
			return nil, nil, fmt.Errorf("%w: zero frequency for %q", ErrInvalidHeader, symbol)
		}
		if _, dup := ft[symbol]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate entry for %q", ErrInvalidHeader, symbol)
		}
		ft[symbol] = freq
	}

	bs, err := ReadBitstream(r)
	if err != nil {
		return nil, nil, err
	}
	return ft, bs, nil
}

func atEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
