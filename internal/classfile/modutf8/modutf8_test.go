package modutf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeASCII(t *testing.T) {
	got := EncodeString("hello")
	assert.Equal(t, []byte("hello"), got)
}

func TestEncodeNullCodePoint(t *testing.T) {
	got := Encode([]rune{0})
	assert.Equal(t, []byte{0xC0, 0x80}, got)
}

func TestEncodeTwoByteRange(t *testing.T) {
	got := Encode([]rune{0x80})
	require.Len(t, got, 2)
	assert.Equal(t, byte(0xC2), got[0])
	assert.Equal(t, byte(0x80), got[1])
}

func TestEncodeThreeByteRange(t *testing.T) {
	got := Encode([]rune{0x20AC}) // EURO SIGN
	require.Len(t, got, 3)
	assert.Equal(t, []byte{0xE2, 0x82, 0xAC}, got)
}

func TestEncodeSupplementaryAsSurrogatePair(t *testing.T) {
	got := Encode([]rune{0x1F600}) // outside the BMP
	// Each surrogate half encodes to 3 bytes, for 6 total.
	assert.Len(t, got, 6)
}

func TestByteSizeMatchesEncodeLength(t *testing.T) {
	text := []rune("javax/security\x00€")
	assert.Equal(t, len(Encode(text)), ByteSize(text))
}

func TestByteSizePrecomputedSizing(t *testing.T) {
	text := []rune("javax/")
	assert.Equal(t, 6, ByteSize(text))
}
