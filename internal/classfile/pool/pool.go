// Package pool implements the constant-pool walker: a stateless reader
// that advances an offset cursor across typed, variable-width entries.
package pool

import (
	"encoding/binary"
	"fmt"

	"github.com/wildjak/clsmap/internal/classfile/model"
)

// Entry describes one visited constant-pool entry, in whole-file byte
// offsets.
type Entry struct {
	LogicalIndex  int
	Kind          model.PoolEntryKind
	EntryOffset   int // offset of the tag byte
	PayloadOffset int // offset immediately past any fixed-width header (e.g. Utf8's length prefix)
	PayloadLength int // for Utf8, the number of payload bytes; 0 for fixed-width kinds
}

// Visitor is invoked once per logical constant-pool entry, in
// ascending logical-index order. Long and Double entries occupy two
// logical slots but are visited once, at their lower index.
type Visitor func(e Entry) error

// Walk visits the poolSize-1 logical entries of the constant pool
// beginning at start, and returns the byte offset immediately past the
// pool. It never allocates.
//
// Walk fails with model.ErrUnsupportedClassVersion on an unrecognized
// tag byte, or model.ErrMalformedClassFile if the cursor would read
// past the end of data.
func Walk(data []byte, poolSize uint16, start int, visit Visitor) (int, error) {
	offset := start

	need := func(n int) error {
		if offset+n > len(data) {
			return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
				model.ErrMalformedClassFile, n, offset, len(data)-offset)
		}
		return nil
	}

	for i := 1; i < int(poolSize); i++ {
		entryOffset := offset
		if err := need(1); err != nil {
			return 0, err
		}
		tag := model.PoolEntryKind(data[offset])
		offset++

		switch tag {
		case model.KindUtf8:
			if err := need(2); err != nil {
				return 0, err
			}
			length := int(binary.BigEndian.Uint16(data[offset : offset+2]))
			offset += 2
			if err := need(length); err != nil {
				return 0, err
			}
			if err := visit(Entry{
				LogicalIndex:  i,
				Kind:          tag,
				EntryOffset:   entryOffset,
				PayloadOffset: offset,
				PayloadLength: length,
			}); err != nil {
				return 0, err
			}
			offset += length

		case model.KindClass, model.KindString, model.KindMethodType,
			model.KindModule, model.KindPackage:
			if err := need(2); err != nil {
				return 0, err
			}
			if err := visit(Entry{LogicalIndex: i, Kind: tag, EntryOffset: entryOffset, PayloadOffset: offset}); err != nil {
				return 0, err
			}
			offset += 2

		case model.KindMethodHandle:
			if err := need(3); err != nil {
				return 0, err
			}
			if err := visit(Entry{LogicalIndex: i, Kind: tag, EntryOffset: entryOffset, PayloadOffset: offset}); err != nil {
				return 0, err
			}
			offset += 3

		case model.KindInteger, model.KindFloat, model.KindFieldRef,
			model.KindMethodRef, model.KindInterfaceMethodRef,
			model.KindNameAndType, model.KindDynamic, model.KindInvokeDynamic:
			if err := need(4); err != nil {
				return 0, err
			}
			if err := visit(Entry{LogicalIndex: i, Kind: tag, EntryOffset: entryOffset, PayloadOffset: offset}); err != nil {
				return 0, err
			}
			offset += 4

		case model.KindLong, model.KindDouble:
			if err := need(8); err != nil {
				return 0, err
			}
			if err := visit(Entry{LogicalIndex: i, Kind: tag, EntryOffset: entryOffset, PayloadOffset: offset}); err != nil {
				return 0, err
			}
			offset += 8
			i++ // occupies two logical slots

		default:
			return 0, fmt.Errorf("%w: tag %d at index %d", model.ErrUnsupportedClassVersion, tag, i)
		}
	}

	return offset, nil
}
