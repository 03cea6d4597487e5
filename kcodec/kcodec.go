// Package kcodec provides the two decompression black boxes the fetch
// decoder treats opaquely: GZIP and Kafka's "xerial" Snappy framing. Each
// takes a compressed byte slice and returns a freshly owned, decompressed
// byte slice.
package kcodec

import (
	"bytes"
	"io"

	xerialsnappy "github.com/eapache/go-xerial-snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Gzip decompresses a GZIP-compressed byte slice into an owned buffer.
func Gzip(compressed []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(err, "kcodec: open gzip stream")
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "kcodec: read gzip stream")
	}
	return out, nil
}

// Snappy decompresses a Kafka-framed Snappy byte slice into an owned
// buffer. Kafka brokers have shipped two distinct on-wire Snappy framings
// historically (plain "xerial" block framing pre-0.8.2.2 and a variant
// after); go-xerial-snappy's Decode auto-detects both, plus raw
// (unframed) Snappy, so both broker generations are handled by the same
// call without this package needing to know which it received.
func Snappy(compressed []byte) ([]byte, error) {
	out, err := xerialsnappy.Decode(compressed)
	if err != nil {
		return nil, errors.Wrap(err, "kcodec: decode snappy stream")
	}
	return out, nil
}
