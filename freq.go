package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable holds one occurrence count per Symbol, indexed by symbol
// value.  It is the sole input to tree construction and, serialized, forms
// the stream header, so the decoder recovers the encoder's table exactly.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads src to EOF and tallies how many times each byte
// value occurs.  The returned table additionally assigns the end-of-stream
// marker EOFSymbol a count of exactly 1, independent of the input, so every
// table produced here satisfies the invariant required by Encoder.Init.
func CountFrequencies(src io.Reader) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	var buf [4096]byte
	for {
		n, err := src.Read(buf[:])
		for _, c := range buf[:n] {
			ft[c]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	ft[EOFSymbol] = 1
	return ft, nil
}

// Total returns the sum of all counts, saturating at the maximum uint64
// rather than wrapping.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		sum := total + count
		if sum < total {
			sum = math.MaxUint64
		}
		total = sum
	}
	return total
}

// Leaves returns the number of symbols with a nonzero count, which is the
// number of leaves in the tree derived from this table.
func (ft *FrequencyTable) Leaves() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the table's nonzero
// entries to the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if count := ft[sym]; count != 0 {
			fmt.Fprintf(&buf, "\tCount(%s) = %d\n", sym, count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
