package fetch

import "github.com/pkg/errors"

// Sentinel error kinds surfaced by this package. Match them with
// errors.Is; the wrapped message carries the offending field.
var (
	// ErrUnexpectedEOF means the cursor ran out of bytes before a read
	// completed. Inside a message set this is swallowed at record
	// boundaries (truncation tolerance); everywhere else it propagates
	// and aborts the whole Reply.
	ErrUnexpectedEOF = errors.New("fetch: unexpected end of buffer")

	// ErrInvalidData covers a negative array length, invalid UTF-8 in a
	// string field, or an unrecognized compression codec.
	ErrInvalidData = errors.New("fetch: invalid data")

	// ErrDecompression wraps a failure reported by the GZIP or Snappy
	// codec.
	ErrDecompression = errors.New("fetch: decompression failed")
)
