package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	ct := CodeTable{
		'a': MakeCode(1, 1),
		'b': MakeCode(1, 0),
	}

	bs, err := Encode([]byte("aab"), ct)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if expect, actual := "110", bs.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := []byte{0x03}, bs.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
	if bs.Len() != 3 {
		t.Errorf("expected 3 bits, got %d", bs.Len())
	}
}

func TestEncode_Empty(t *testing.T) {
	bs, err := Encode(nil, CodeTable{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bs.Len() != 0 {
		t.Errorf("expected an empty stream, got %d bits", bs.Len())
	}
}

func TestEncode_MissingCode(t *testing.T) {
	ct := CodeTable{'a': MakeCode(1, 0)}

	_, err := Encode([]byte("ab"), ct)
	if !errors.Is(err, ErrMissingCode) {
		t.Errorf("expected ErrMissingCode, got %v", err)
	}
}
