package fetch

import (
	"github.com/pkg/errors"

	"github.com/kafkacore/fetchdecode/internal/klog"
	"github.com/kafkacore/fetchdecode/kcodec"
)

// Message is one decoded, post-decompression message.
// Offset is its position in the partition's log; Key and Value are
// always non-nil slices, empty when the wire carried a null or
// zero-length field.
type Message struct {
	Offset int64
	Key    []byte
	Value  []byte
}

// decodeMessageSetFromBorrowed decodes a sequence of (offset, record)
// pairs out of buf, a slice borrowed from the enclosing Reply's raw
// buffer. It returns the flat, post-decompression message list plus any
// additional buffers produced by decompression that the caller (the
// Reply under construction) must retain for as long as the returned
// Messages are reachable. maxDepth bounds how many compression layers
// may be transparently expanded (see Options.MaxMessageSetDepth).
func decodeMessageSetFromBorrowed(buf []byte, log klog.Logger, maxDepth int) ([]Message, [][]byte, error) {
	return parseMessageSet(buf, log, 0, maxDepth)
}

// decodeMessageSetFromOwned decodes buf the same way, additionally
// treating buf itself as an owned buffer that must be retained: it is
// always the product of a prior GZIP/Snappy decompression, never a
// sub-slice of the original reply.
func decodeMessageSetFromOwned(buf []byte, log klog.Logger, depth, maxDepth int) ([]Message, [][]byte, error) {
	messages, retained, err := parseMessageSet(buf, log, depth, maxDepth)
	if err != nil {
		return nil, nil, err
	}
	return messages, append([][]byte{buf}, retained...), nil
}

// parseMessageSet implements the shared decode loop. Both entry points
// above delegate to it; the only difference between
// "from borrowed" and "from owned" is whether the input buffer itself
// needs to be added to the retained-buffers list, not how it is parsed.
func parseMessageSet(buf []byte, log klog.Logger, depth, maxDepth int) ([]Message, [][]byte, error) {
	c := newCursor(buf)
	messages := make([]Message, 0, 8)

	for !c.isEmpty() {
		offset := c.readI64()
		body := c.readBytes()
		if err := c.Err(); err != nil {
			if errors.Is(err, ErrUnexpectedEOF) {
				log.Debugw("message set truncated, tolerating", "decoded_so_far", len(messages))
				return messages, nil, nil
			}
			return nil, nil, err
		}

		rec, err := decodeRecord(body)
		if err != nil {
			if errors.Is(err, ErrUnexpectedEOF) {
				log.Debugw("message record truncated, tolerating", "decoded_so_far", len(messages))
				return messages, nil, nil
			}
			return nil, nil, err
		}

		switch rec.codec() {
		case codecNone:
			messages = append(messages, Message{Offset: offset, Key: rec.key, Value: rec.value})

		case codecGzip, codecSnappy:
			if depth >= maxDepth {
				return nil, nil, errors.Wrapf(ErrInvalidData, "compressed message set nesting exceeds depth %d", maxDepth)
			}

			var decompressed []byte
			var derr error
			if rec.codec() == codecGzip {
				decompressed, derr = kcodec.Gzip(rec.value)
			} else {
				decompressed, derr = kcodec.Snappy(rec.value)
			}
			if derr != nil {
				return nil, nil, errors.Wrap(ErrDecompression, derr.Error())
			}
			log.Debugw("expanded compressed message set",
				"codec", rec.codec(), "compressed_bytes", len(rec.value), "decompressed_bytes", len(decompressed))
			return decodeMessageSetFromOwned(decompressed, log, depth+1, maxDepth)

		default:
			return nil, nil, errors.Wrapf(ErrInvalidData, "unknown compression codec %d", rec.attr&0x03)
		}
	}

	return messages, nil, nil
}
