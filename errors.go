package huffpack

import (
	"errors"
)

// ErrHeader is reported when a stream to be decoded does not begin with a
// well-formed frequency table header.  Errors returned by Decode wrap it,
// so callers should match it with errors.Is.
var ErrHeader = errors.New("huffpack: invalid header")

// ErrTruncated is reported when the encoded bit stream ends before the
// end-of-stream symbol decodes.  Errors returned by Decode wrap it, so
// callers should match it with errors.Is.
var ErrTruncated = errors.New("huffpack: truncated stream")
