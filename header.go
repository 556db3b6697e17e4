package huffpack

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// magic identifies the huffpack stream format.
const magic = "hpk1"

// writeHeader serializes ft through w while w is still byte aligned: the
// four magic bytes, then all 257 counts as unsigned varints in symbol
// order.
func writeHeader(w *bitio.Writer, ft *FrequencyTable) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	var buf [binary.MaxVarintLen64]byte
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		n := binary.PutUvarint(buf[:], ft[sym])
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
	}
	return nil
}

// readHeader recovers the frequency table written by writeHeader.  The
// reader must still be byte aligned.  A stream that does not start with the
// magic bytes, or that ends inside the count block, fails with an error
// wrapping ErrHeader; read faults on the underlying source propagate as-is.
func readHeader(r *bitio.Reader) (*FrequencyTable, error) {
	var m [len(magic)]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: missing magic", ErrHeader)
		}
		return nil, err
	}
	if string(m[:]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrHeader, m[:])
	}

	ft := new(FrequencyTable)
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		count, err := binary.ReadUvarint(r)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: frequency table cut short at symbol %s", ErrHeader, sym)
		}
		if err != nil {
			return nil, err
		}
		ft[sym] = count
	}
	return ft, nil
}
