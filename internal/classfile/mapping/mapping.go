// Package mapping implements the immutable, validated MappingTable and
// its single-goroutine Builder, per spec.md §4.3.
package mapping

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"

	"github.com/wildjak/clsmap/internal/classfile/model"
	"github.com/wildjak/clsmap/internal/classfile/modutf8"
)

// Table is an immutable, ordered collection of (from, to) byte-sequence
// pairs whose from-texts are pairwise non-containing. It is safe to
// share across goroutines and reuse across many Transform calls.
type Table struct {
	entries       []model.MappingEntry // 1-indexed: entries[0] is a nil sentinel
	minFromLength int
}

// Entries returns the table's entries, 1-indexed (index 0 is a nil
// sentinel meaning "no match", never dereferenced by callers).
func (t *Table) Entries() []model.MappingEntry { return t.entries }

// Len returns the number of mapping entries (excluding the sentinel).
func (t *Table) Len() int { return len(t.entries) - 1 }

// MinFromLength is the shortest from-byte-sequence across all entries,
// used by the rewriter to bound its scan loop.
func (t *Table) MinFromLength() int { return t.minFromLength }

// Builder accumulates mapping entries before they are validated and
// frozen into a Table. A Builder is bound to the goroutine that created
// it: any method called from a different goroutine fails with
// model.ErrThreadBindingViolation.
type Builder struct {
	ownerGoroutine string
	from           [][]rune
	to             [][]rune
	built          bool
}

// NewBuilder returns a Builder bound to the calling goroutine.
func NewBuilder() *Builder {
	return &Builder{ownerGoroutine: currentGoroutineID()}
}

// Add validates and records one (from, to) mapping. from and to are
// code-point sequences (not yet modified-UTF-8 encoded); the containment
// check in spec.md §4.3 operates on this textual form.
//
// Add fails with model.ErrThreadBindingViolation if called from a
// goroutine other than the one that created the Builder, with
// model.ErrIllegalState if the Builder was already built, and with
// model.ErrInvalidArgument if from or to is empty or if from overlaps
// (as a substring, in either direction) any previously added from.
func (b *Builder) Add(from, to string) error {
	if b.ownerGoroutine != currentGoroutineID() {
		return model.ErrThreadBindingViolation
	}
	if b.built {
		return fmt.Errorf("%w: builder already built", model.ErrIllegalState)
	}
	if from == "" || to == "" {
		return fmt.Errorf("%w: from and to must be non-empty", model.ErrInvalidArgument)
	}
	for _, existing := range b.from {
		existingStr := string(existing)
		if bytes.Contains([]byte(existingStr), []byte(from)) || bytes.Contains([]byte(from), []byte(existingStr)) {
			return fmt.Errorf("%w: %q overlaps an existing mapping entry %q", model.ErrInvalidArgument, from, existingStr)
		}
	}
	b.from = append(b.from, []rune(from))
	b.to = append(b.to, []rune(to))
	return nil
}

// Build validates that at least one entry was added, encodes every
// from/to pair through modutf8, computes MinFromLength, and returns an
// immutable Table. After Build, the Builder is spent: further Add or
// Build calls fail with model.ErrIllegalState.
func (b *Builder) Build() (*Table, error) {
	if b.ownerGoroutine != currentGoroutineID() {
		return nil, model.ErrThreadBindingViolation
	}
	if b.built {
		return nil, fmt.Errorf("%w: builder already built", model.ErrIllegalState)
	}
	if len(b.from) == 0 {
		return nil, fmt.Errorf("%w: builder has no mapping entries", model.ErrIllegalState)
	}
	b.built = true

	entries := make([]model.MappingEntry, len(b.from)+1)
	minLen := -1
	for i := range b.from {
		fromBytes := modutf8.Encode(b.from[i])
		toBytes := modutf8.Encode(b.to[i])
		entries[i+1] = model.MappingEntry{From: fromBytes, To: toBytes}
		if minLen == -1 || len(fromBytes) < minLen {
			minLen = len(fromBytes)
		}
	}

	return &Table{entries: entries, minFromLength: minLen}, nil
}

// currentGoroutineID extracts the numeric goroutine id from the calling
// goroutine's stack trace. Go exposes no public goroutine-identity API;
// this is the standard (if grubby) way to observe it, used here purely
// as a misuse-detector for the Builder's single-goroutine contract, not
// as a correctness mechanism.
func currentGoroutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return ""
	}
	id := fields[1]
	if _, err := strconv.ParseUint(string(id), 10, 64); err != nil {
		return ""
	}
	return string(id)
}
