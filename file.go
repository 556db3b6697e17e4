package huffpack

import (
	"io"
	"os"
)

// Stats reports the byte counts of one file encode or decode operation.
type Stats struct {
	// BytesIn is the size of the input file.
	BytesIn int64

	// BytesOut is the number of bytes written to the output file.
	BytesOut int64
}

// EncodeFile compresses the file at srcPath into a new file at dstPath,
// replacing it if it exists.  Both files are closed before EncodeFile
// returns; on failure the partially written destination is left as-is for
// the caller to clean up.
func EncodeFile(dstPath, srcPath string) (Stats, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return Stats{}, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return Stats{}, err
	}

	cw := &countWriter{w: dst}
	if err := Encode(cw, src); err != nil {
		dst.Close()
		return Stats{}, err
	}
	if err := dst.Close(); err != nil {
		return Stats{}, err
	}
	return Stats{BytesIn: fi.Size(), BytesOut: cw.n}, nil
}

// DecodeFile decompresses the file at srcPath into a new file at dstPath,
// replacing it if it exists.  Both files are closed before DecodeFile
// returns; on failure the partially written destination is left as-is for
// the caller to clean up.
func DecodeFile(dstPath, srcPath string) (Stats, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return Stats{}, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return Stats{}, err
	}

	cw := &countWriter{w: dst}
	if err := Decode(cw, src); err != nil {
		dst.Close()
		return Stats{}, err
	}
	if err := dst.Close(); err != nil {
		return Stats{}, err
	}
	return Stats{BytesIn: fi.Size(), BytesOut: cw.n}, nil
}

// countWriter counts the bytes passing through to w.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

var _ io.Writer = (*countWriter)(nil)
