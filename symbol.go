package huffpack

import (
	"fmt"
)

// Symbol represents one unit of the coding alphabet: a literal byte value in
// the range [0, 255], or the reserved end-of-stream marker EOFSymbol.
// Negative symbols are not valid.
type Symbol int32

// NumSymbols is the size of the coding alphabet: 256 literal byte values
// plus the end-of-stream marker.
const NumSymbols = 257

// EOFSymbol is the reserved end-of-stream marker.  It never occurs in the
// input data; the encoder appends its code after the final input byte, and
// the decoder stops when it decodes.
const EOFSymbol = Symbol(256)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	switch {
	case s == EOFSymbol:
		return "EOF"
	case s >= 0 && s < EOFSymbol:
		return fmt.Sprintf("0x%02x", uint32(s))
	default:
		return fmt.Sprintf("Symbol(%d)", int32(s))
	}
}

var _ fmt.Stringer = Symbol(0)
