package fetch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRecordRoundTrip(t *testing.T) {
	body := buildRawMessage(int8(codecNone), []byte("key"), []byte("value"))

	rec, err := decodeRecord(body)
	require.NoError(t, err)
	require.Equal(t, []byte("key"), rec.key)
	require.Equal(t, []byte("value"), rec.value)
	require.Equal(t, int8(0), rec.magic)
	require.Equal(t, codecNone, rec.codec())
	require.NotZero(t, rec.crc)
}

func TestDecodeRecordEmptyKeyAndValue(t *testing.T) {
	body := buildRawMessage(int8(codecNone), []byte{}, []byte{})

	rec, err := decodeRecord(body)
	require.NoError(t, err)
	require.NotNil(t, rec.key)
	require.Empty(t, rec.key)
	require.NotNil(t, rec.value)
	require.Empty(t, rec.value)
}

func TestDecodeRecordTruncatedIsEOF(t *testing.T) {
	body := buildRawMessage(int8(codecNone), []byte("k"), []byte("v"))
	_, err := decodeRecord(body[:len(body)-1])
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestRecordCodecMask(t *testing.T) {
	r := rawRecord{attr: int8(codecSnappy) | 0x04} // high bits set, must be ignored
	require.Equal(t, codecSnappy, r.codec())
}
