package fetch

import (
	"encoding/binary"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

// cursor reads big-endian primitives and length-prefixed arrays/bytes/
// strings out of a borrowed byte slice without ever allocating or
// copying; every slice it returns is a sub-slice of buf.
//
// Errors are sticky: once a read fails, every subsequent read on the
// same cursor is a no-op returning the zero value, and the original
// error is retained. This lets a caller perform a whole record's worth
// of reads and inspect the cursor once at the end, rather than checking
// an error after every individual read.
type cursor struct {
	buf []byte
	pos int
	err error
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// Err returns the first error encountered, if any.
func (c *cursor) Err() error {
	return c.err
}

// isEmpty reports whether the cursor has consumed the entire buffer.
// It does not consult the sticky error.
func (c *cursor) isEmpty() bool {
	return c.pos == len(c.buf)
}

func (c *cursor) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// need reports whether n more bytes are available, failing the cursor
// with ErrUnexpectedEOF if not.
func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if n < 0 || len(c.buf)-c.pos < n {
		c.fail(ErrUnexpectedEOF)
		return false
	}
	return true
}

func (c *cursor) readI8() int8 {
	if !c.need(1) {
		return 0
	}
	v := int8(c.buf[c.pos])
	c.pos++
	return v
}

func (c *cursor) readI16() int16 {
	if !c.need(2) {
		return 0
	}
	v := int16(binary.BigEndian.Uint16(c.buf[c.pos:]))
	c.pos += 2
	return v
}

func (c *cursor) readI32() int32 {
	if !c.need(4) {
		return 0
	}
	v := int32(binary.BigEndian.Uint32(c.buf[c.pos:]))
	c.pos += 4
	return v
}

func (c *cursor) readU32() uint32 {
	if !c.need(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) readI64() int64 {
	if !c.need(8) {
		return 0
	}
	v := int64(binary.BigEndian.Uint64(c.buf[c.pos:]))
	c.pos += 8
	return v
}

// readArrayLen reads the i32 element count prefixing a Kafka protocol
// array. A negative count is malformed input, not the wire's "null"
// convention (that's reserved for bytes/string fields).
func (c *cursor) readArrayLen() int {
	n := c.readI32()
	if c.err != nil {
		return 0
	}
	if n < 0 {
		c.fail(errors.Wrapf(ErrInvalidData, "negative array length %d", n))
		return 0
	}
	return int(n)
}

// readBytes reads an i32-length-prefixed byte block. A negative length
// is the wire's null convention and collapses to an empty, non-nil
// slice: a zero-length block and a null block are indistinguishable to
// a caller. The returned slice is a sub-slice of buf; no copy is made.
func (c *cursor) readBytes() []byte {
	n := c.readI32()
	if c.err != nil {
		return nil
	}
	if n < 0 {
		return []byte{}
	}
	if !c.need(int(n)) {
		return nil
	}
	b := c.buf[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return b
}

// readString reads an i16-length-prefixed UTF-8 string. A negative
// length collapses to "". Invalid UTF-8 fails the cursor with
// ErrInvalidData.
func (c *cursor) readString() string {
	n := c.readI16()
	if c.err != nil {
		return ""
	}
	if n < 0 {
		return ""
	}
	if !c.need(int(n)) {
		return ""
	}
	b := c.buf[c.pos : c.pos+int(n)]
	c.pos += int(n)
	if !utf8.Valid(b) {
		c.fail(errors.Wrap(ErrInvalidData, "invalid UTF-8 in string field"))
		return ""
	}
	return bytesToString(b)
}

// bytesToString views b as a string without copying. b is a sub-slice of
// a cursor's backing buf, which the Reply that owns it never mutates or
// reallocates after decoding, so the usual aliasing hazard of
// string<->[]byte conversions does not apply here.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
