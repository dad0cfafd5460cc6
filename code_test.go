package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(1, 0), `"0"`},
		{MakeCode(1, 1), `"1"`},
		{MakeCode(3, 5), `"101"`},
		{MakeCode(4, 2), `"0010"`},
		{Code{}, `""`},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			if actual := row.code.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Bit(t *testing.T) {
	hc := MakeCode(4, 0x06)

	expect := []byte{0, 1, 1, 0}
	for i, want := range expect {
		if actual := hc.Bit(i); actual != want {
			t.Errorf("bit %d: expected %d, got %d", i, want, actual)
		}
	}
}

func TestCode_push(t *testing.T) {
	hc := Code{}.push(1).push(0).push(1)

	if expect := MakeCode(3, 5); hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
}
