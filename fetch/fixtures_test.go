package fetch

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// The helpers in this file build well-formed Fetch reply bytes for
// tests. The binary fixtures the original Rust source shipped
// (test-data/fetch1.mytopic.1p.*) are not part of this retrieval pack
// (build/test artifacts were filtered out), so tests synthesize
// equivalent wire bytes here instead, driving the real compression
// codecs rather than embedding pre-built compressed blobs.

type wireBuilder struct {
	buf bytes.Buffer
}

func (b *wireBuilder) i8(v int8)   { b.buf.WriteByte(byte(v)) }
func (b *wireBuilder) i16(v int16) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *wireBuilder) i32(v int32) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *wireBuilder) i64(v int64) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *wireBuilder) u32(v uint32) { binary.Write(&b.buf, binary.BigEndian, v) }

func (b *wireBuilder) bytes(p []byte) {
	if p == nil {
		b.i32(-1)
		return
	}
	b.i32(int32(len(p)))
	b.buf.Write(p)
}

func (b *wireBuilder) str(s string) {
	b.i16(int16(len(s)))
	b.buf.WriteString(s)
}

func (b *wireBuilder) raw(p []byte) { b.buf.Write(p) }

func (b *wireBuilder) Bytes() []byte { return b.buf.Bytes() }

// buildRawMessage encodes one on-wire message body (crc, magic, attr,
// key, value); crc is computed over magic+attr+key+value the way the
// real wire format does, even though this core never validates it.
func buildRawMessage(attr int8, key, value []byte) []byte {
	var body wireBuilder
	body.i8(0) // magic
	body.i8(attr)
	body.bytes(key)
	body.bytes(value)
	payload := body.Bytes()

	crc := crc32.ChecksumIEEE(payload)

	var full wireBuilder
	full.u32(crc)
	full.raw(payload)
	return full.Bytes()
}

// buildRecord wraps a raw message body with its (offset, size) framing
// as found inside a message set.
func buildRecord(offset int64, attr int8, key, value []byte) []byte {
	msg := buildRawMessage(attr, key, value)
	var b wireBuilder
	b.i64(offset)
	b.bytes(msg)
	return b.Bytes()
}

// buildMessageSet concatenates records with no outer count, as the wire
// format requires.
func buildMessageSet(records ...[]byte) []byte {
	var b wireBuilder
	for _, r := range records {
		b.raw(r)
	}
	return b.Bytes()
}

type fixturePartition struct {
	partition     int32
	errorCode     int16
	highWatermark int64
	messageSet    []byte
}

type fixtureTopic struct {
	name       string
	partitions []fixturePartition
}

// buildReply encodes a full Fetch reply body (correlation id + topics),
// the bytes fetch.Decode consumes.
func buildReply(correlationID int32, topics ...fixtureTopic) []byte {
	var b wireBuilder
	b.i32(correlationID)
	b.i32(int32(len(topics)))
	for _, t := range topics {
		b.str(t.name)
		b.i32(int32(len(t.partitions)))
		for _, p := range t.partitions {
			b.i32(p.partition)
			b.i16(p.errorCode)
			b.i64(p.highWatermark)
			b.bytes(p.messageSet)
		}
	}
	return b.Bytes()
}

// plainMessageSet builds an uncompressed message set with one record per
// value, each with an empty key, at offsets counting up from 0.
func plainMessageSet(values ...string) []byte {
	var records [][]byte
	for i, v := range values {
		records = append(records, buildRecord(int64(i), int8(codecNone), []byte{}, []byte(v)))
	}
	return buildMessageSet(records...)
}
