package huffpack

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decoder holds the Huffman tree rebuilt from a transmitted frequency
// table.
type Decoder struct {
	root    node
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from a frequency table, normally one
// recovered from a stream header.  Unlike Encoder.Init, the table here is
// untrusted wire data, so a table that does not assign the end-of-stream
// marker a count of exactly 1 is rejected with an error wrapping ErrHeader.
func (d *Decoder) Init(ft *FrequencyTable) error {
	if ft[EOFSymbol] != 1 {
		return fmt.Errorf("%w: end-of-stream count is %d, must be 1", ErrHeader, ft[EOFSymbol])
	}

	root := buildTree(ft)
	minSize, maxSize := depthRange(root)
	*d = Decoder{
		root:    root,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// ReadSymbol walks the tree from the root, consuming one bit per branch,
// until a leaf decodes.  A bit stream that runs out mid-walk fails with an
// error wrapping ErrTruncated; other read faults propagate as-is.  When
// the tree is a single leaf, ReadSymbol returns its symbol without
// consuming any bits.
func (d Decoder) ReadSymbol(r *bitio.Reader) (Symbol, error) {
	nd := d.root
	for {
		switch v := nd.(type) {
		case *leaf:
			return v.sym, nil
		case *branch:
			bit, err := r.ReadBool()
			if err == io.EOF {
				return InvalidSymbol, fmt.Errorf("%w: bit stream ended before the end-of-stream symbol", ErrTruncated)
			}
			if err != nil {
				return InvalidSymbol, err
			}
			if bit {
				nd = v.right
			} else {
				nd = v.left
			}
		}
	}
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	dumpCodes(&buf, d.root, nil)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode decompresses src into dst: it recovers the frequency table from
// the stream header, rebuilds the encoder's tree, and walks it bit by bit,
// emitting one byte per decoded symbol until the end-of-stream symbol is
// reached.  Padding bits after the end-of-stream code are never
// interpreted.  Decode may buffer reads past the end of the encoded
// stream, so the position of src afterwards is unspecified; dst is flushed
// but never closed.
func Decode(dst io.Writer, src io.Reader) error {
	r := bitio.NewReader(src)
	ft, err := readHeader(r)
	if err != nil {
		return err
	}

	var dec Decoder
	if err := dec.Init(ft); err != nil {
		return err
	}

	w := bufio.NewWriter(dst)
	for {
		sym, err := dec.ReadSymbol(r)
		if err != nil {
			return err
		}
		if sym == EOFSymbol {
			break
		}
		if err := w.WriteByte(byte(sym)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// DecodeBytes decompresses an in-memory encoded stream and returns the
// original data.
func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
