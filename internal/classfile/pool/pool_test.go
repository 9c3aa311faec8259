package pool

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildjak/clsmap/internal/classfile/model"
)

// buildPool constructs a raw constant-pool byte sequence (starting at
// offset 10, as in a real class file) from a list of Utf8 payloads; each
// gets its tag byte and a 2-byte length prefix written automatically.
func buildPool(t *testing.T, utf8Payloads []string) ([]byte, uint16) {
	t.Helper()

	buf := make([]byte, 10) // fake header, unread by Walk

	poolSize := uint16(len(utf8Payloads) + 1)
	for _, s := range utf8Payloads {
		buf = append(buf, byte(model.KindUtf8))
		lenBuf := make([]byte, 2)
		binary.BigEndian.PutUint16(lenBuf, uint16(len(s)))
		buf = append(buf, lenBuf...)
		buf = append(buf, []byte(s)...)
	}
	return buf, poolSize
}

func TestWalkVisitsUtf8EntriesInOrder(t *testing.T) {
	data, poolSize := buildPool(t, []string{"javax/a", "other", "javax/b"})

	var seen []string
	end, err := Walk(data, poolSize, 10, func(e Entry) error {
		require.Equal(t, model.KindUtf8, e.Kind)
		seen = append(seen, string(data[e.PayloadOffset:e.PayloadOffset+e.PayloadLength]))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, len(data), end)
	assert.Equal(t, []string{"javax/a", "other", "javax/b"}, seen)
}

func TestWalkMixedKindsAdvancesFixedWidths(t *testing.T) {
	buf := make([]byte, 10)
	buf = append(buf, byte(model.KindClass))
	buf = append(buf, 0x00, 0x05) // name_index
	buf = append(buf, byte(model.KindLong))
	buf = append(buf, make([]byte, 8)...)
	buf = append(buf, byte(model.KindUtf8))
	buf = append(buf, 0x00, 0x03)
	buf = append(buf, []byte("abc")...)

	// Class(1 slot) + Long(2 slots) + Utf8(1 slot) = poolSize-1 == 4
	poolSize := uint16(5)

	var kinds []model.PoolEntryKind
	end, err := Walk(buf, poolSize, 10, func(e Entry) error {
		kinds = append(kinds, e.Kind)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, len(buf), end)
	assert.Equal(t, []model.PoolEntryKind{model.KindClass, model.KindLong, model.KindUtf8}, kinds)
}

func TestWalkUnknownTagFails(t *testing.T) {
	buf := make([]byte, 10)
	buf = append(buf, 0x02) // unrecognized tag

	_, err := Walk(buf, 2, 10, func(e Entry) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnsupportedClassVersion)
}

func TestWalkTruncatedBufferFails(t *testing.T) {
	buf := make([]byte, 10)
	buf = append(buf, byte(model.KindUtf8))
	buf = append(buf, 0x00, 0x10) // claims 16 bytes but none follow

	_, err := Walk(buf, 2, 10, func(e Entry) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedClassFile)
}

func TestWalkZeroEntries(t *testing.T) {
	buf := make([]byte, 10)
	end, err := Walk(buf, 1, 10, func(e Entry) error {
		t.Fatal("visitor should not be called for an empty pool")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, end)
}
