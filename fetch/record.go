package fetch

// codec identifies the compression scheme selected by the low two bits
// of a record's attribute byte.
type codec int8

const (
	codecNone   codec = 0
	codecGzip   codec = 1
	codecSnappy codec = 2
)

// rawRecord is the transient, never-surfaced decode of one on-wire
// message record.
// TODO(husio) check crc
type rawRecord struct {
	crc   uint32
	magic int8
	attr  int8
	key   []byte
	value []byte
}

// decodeRecord decodes the full body of one on-wire message: crc, magic,
// attr, key, value, in that order. body is expected to be consumed
// exactly; a non-empty remainder is tolerated (debug-only assertion in
// the source this is ported from) since some producers pad message
// bodies.
func decodeRecord(body []byte) (rawRecord, error) {
	c := newCursor(body)

	rec := rawRecord{
		crc:   c.readU32(),
		magic: c.readI8(),
		attr:  c.readI8(),
	}
	rec.key = c.readBytes()
	rec.value = c.readBytes()

	if err := c.Err(); err != nil {
		return rawRecord{}, err
	}
	return rec, nil
}

func (r rawRecord) codec() codec {
	return codec(r.attr & 0x03)
}
