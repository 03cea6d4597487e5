package kcodec

import (
	"bytes"
	"compress/gzip"
	"testing"

	xerialsnappy "github.com/eapache/go-xerial-snappy"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTrip(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(want)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := Gzip(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGzipInvalidInput(t *testing.T) {
	_, err := Gzip([]byte("not gzip"))
	require.Error(t, err)
}

func TestSnappyRoundTrip(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog")
	compressed := xerialsnappy.Encode(want)

	got, err := Snappy(compressed)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
