package huffman

import (
	"bytes"
	"errors"
	"testing"
)

// makeTestTree builds the tree for "aaaabbc", whose deterministic code
// assignment is a="1", b="01", c="00".
func makeTestTree() *Node {
	root, err := BuildTree(CountFrequencies([]byte("aaaabbc")))
	if err != nil {
		panic(err)
	}
	return root
}

func bitstreamOf(bits string) *Bitstream {
	bs := new(Bitstream)
	for _, c := range bits {
		if c == '1' {
			bs.Append(1)
		} else {
			bs.Append(0)
		}
	}
	return bs
}

func TestDecoder_Decode(t *testing.T) {
	d := NewDecoder(makeTestTree())

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "1", expect: "a"},
		{bits: "01", expect: "b"},
		{bits: "00", expect: "c"},
		{bits: "111", expect: "aaa"},
		{bits: "0100", expect: "bc"},
		{bits: "10100", expect: "abc"},
	}
	for _, row := range testData {
		t.Run("bits="+row.bits, func(t *testing.T) {
			actual, err := d.Decode(bitstreamOf(row.bits))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal([]byte(row.expect), actual) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestDecoder_Truncated(t *testing.T) {
	d := NewDecoder(makeTestTree())

	for _, bits := range []string{"0", "110", "1010"} {
		t.Run("bits="+bits, func(t *testing.T) {
			_, err := d.Decode(bitstreamOf(bits))
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", err)
			}
		})
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'x': 3})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	d := NewDecoder(root)

	actual, err := d.Decode(bitstreamOf("000"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal([]byte("xxx"), actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "xxx", actual)
	}

	_, err = d.Decode(bitstreamOf("010"))
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestDecoder_EmptyAlphabet(t *testing.T) {
	d := NewDecoder(nil)

	actual, err := d.Decode(new(Bitstream))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(actual) != 0 {
		t.Errorf("expected empty output, got %q", actual)
	}

	actual, err = d.Decode(nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(actual) != 0 {
		t.Errorf("expected empty output, got %q", actual)
	}

	_, err = d.Decode(bitstreamOf("0"))
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestNewTableDecoder(t *testing.T) {
	d, err := NewTableDecoder(BuildCodeTable(makeTestTree()))
	if err != nil {
		t.Fatalf("NewTableDecoder failed: %v", err)
	}

	actual, err := d.Decode(bitstreamOf("10100"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal([]byte("abc"), actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abc", actual)
	}
}

func TestNewTableDecoder_SingleEntry(t *testing.T) {
	d, err := NewTableDecoder(CodeTable{'x': MakeCode(1, 0)})
	if err != nil {
		t.Fatalf("NewTableDecoder failed: %v", err)
	}

	actual, err := d.Decode(bitstreamOf("00"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal([]byte("xx"), actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "xx", actual)
	}

	_, err = d.Decode(bitstreamOf("01"))
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestNewTableDecoder_Inconsistent(t *testing.T) {
	type testRow struct {
		name string
		ct   CodeTable
	}

	testData := [...]testRow{
		{name: "duplicate", ct: CodeTable{'a': MakeCode(1, 0), 'b': MakeCode(1, 0)}},
		{name: "prefix", ct: CodeTable{'a': MakeCode(1, 0), 'b': MakeCode(2, 1)}},
		{name: "empty code", ct: CodeTable{'a': {}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := NewTableDecoder(row.ct)
			if !errors.Is(err, ErrTableInconsistent) {
				t.Errorf("expected ErrTableInconsistent, got %v", err)
			}
		})
	}
}

func TestNewFrequencyDecoder(t *testing.T) {
	c := New([]byte("banana"))
	bs := c.Encode()

	d := NewFrequencyDecoder(c.Frequencies())
	actual, err := d.Decode(bs)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal([]byte("banana"), actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "banana", actual)
	}
}
