package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder holds the code assignments derived from one frequency table.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a frequency table.  The table must
// assign the end-of-stream marker a count of exactly 1, which every table
// built by CountFrequencies does.
func (e *Encoder) Init(ft *FrequencyTable) {
	assert.Assertf(ft[EOFSymbol] == 1, "end-of-stream count is %d, must be 1", ft[EOFSymbol])

	codes, minSize, maxSize := deriveCodes(buildTree(ft))
	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols whose
// count was zero in the table passed to Init have no code; Encode returns
// the zero Code for them.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		hc := e.codes[sym]
		if hc.Size == 0 && sym != EOFSymbol {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", sym, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode compresses src into dst.  The source is read twice, once to count
// byte frequencies and once to emit codes, with a rewind in between; dst
// receives the frequency table header followed by the bit-packed payload
// and the end-of-stream code, zero-padded to a whole byte.  Everything
// buffered is flushed before Encode returns, but dst itself is never
// closed; the caller owns both streams.
func Encode(dst io.Writer, src io.ReadSeeker) error {
	ft, err := CountFrequencies(src)
	if err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	var enc Encoder
	enc.Init(ft)

	w := bitio.NewWriter(dst)
	if err := writeHeader(w, ft); err != nil {
		return err
	}

	var buf [4096]byte
	for {
		n, err := src.Read(buf[:])
		for _, c := range buf[:n] {
			if err := writeCode(w, enc.codes[c]); err != nil {
				return err
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := writeCode(w, enc.codes[EOFSymbol]); err != nil {
		return err
	}
	return w.Close()
}

// EncodeBytes compresses data in memory and returns the encoded stream.
func EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeCode emits one code through w.  The zero-size code, which occurs
// only when the tree is a single leaf, writes nothing.
func writeCode(w *bitio.Writer, hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	return w.WriteBits(hc.Bits, hc.Size)
}
