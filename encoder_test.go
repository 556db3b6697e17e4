package huffpack

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestTable() *FrequencyTable {
	var ft FrequencyTable
	ft[0] = 5
	ft[1] = 9
	ft[2] = 12
	ft[3] = 13
	ft[4] = 16
	ft[5] = 45
	ft[EOFSymbol] = 1
	return &ft
}

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestTable())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tEncode(0x00) = \"11001\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"\tEncode(EOF) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_TieBreak(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 1000
	ft['b'] = 1
	ft['c'] = 2
	ft[EOFSymbol] = 1

	var e Encoder
	e.Init(&ft)

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode(0x61) = \"1\"\n",
		"\tEncode(0x62) = \"010\"\n",
		"\tEncode(0x63) = \"00\"\n",
		"\tEncode(EOF) = \"011\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_Empty(t *testing.T) {
	ft, err := CountFrequencies(strings.NewReader(""))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	var e Encoder
	e.Init(ft)

	if e.MinSize() != 0 || e.MaxSize() != 0 {
		t.Errorf("expected sizes 0/0, got %d/%d", e.MinSize(), e.MaxSize())
	}
	if hc := e.Encode(EOFSymbol); hc.Size != 0 {
		t.Errorf("expected the empty code for EOF, got %s", hc)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 0\n",
		"\tMaxSize() = 0\n",
		"\tEncode(EOF) = \"\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_RepeatedByte(t *testing.T) {
	ft, err := CountFrequencies(bytes.NewReader(bytes.Repeat([]byte{65}, 1000)))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	var e Encoder
	e.Init(ft)

	if hc := e.Encode(65); hc.Size != 1 || hc.Bits != 1 {
		t.Errorf("expected code \"1\" for 0x41, got %s", hc)
	}
	if hc := e.Encode(EOFSymbol); hc.Size != 1 || hc.Bits != 0 {
		t.Errorf("expected code \"0\" for EOF, got %s", hc)
	}
	if hc := e.Encode(66); hc.Size != 0 {
		t.Errorf("expected no code for 0x42, got %s", hc)
	}
}
