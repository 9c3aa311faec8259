// Package rewrite implements the class-file rewriter: a two-pass,
// zero-interpretation byte-level transform that relocates string-table
// entries according to a mapping.Table, per spec.md §4.4.
package rewrite

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/wildjak/clsmap/internal/classfile/mapping"
	"github.com/wildjak/clsmap/internal/classfile/model"
	"github.com/wildjak/clsmap/internal/classfile/pool"
)

// headerSize is the length of the verbatim-copied class-file header:
// 4-byte magic, 2-byte minor version, 2-byte major version, 2-byte
// constant-pool size.
const headerSize = 10

// Stats summarizes one Transform call.
type Stats struct {
	// Replacements is the total number of individual matches applied
	// across every rewritten Utf8 entry.
	Replacements int
}

// Transform applies table's replacements to every Utf8 constant-pool
// entry in input and returns the result. If no entry matches, the
// returned slice may alias input (the contract only requires
// byte-equality, not a fresh allocation).
//
// Transform fails with model.ErrUnsupportedClassVersion or
// model.ErrMalformedClassFile if the constant pool cannot be walked, or
// model.ErrLengthOverflow if a patched Utf8 length prefix would exceed
// 65535.
func Transform(input []byte, table *mapping.Table) ([]byte, error) {
	output, _, err := TransformStats(input, table)
	return output, err
}

// TransformStats is Transform plus a summary of how many replacements
// were applied, for callers (the CLI's progress reporting) that need
// more than a before/after byte comparison.
func TransformStats(input []byte, table *mapping.Table) ([]byte, Stats, error) {
	if len(input) < headerSize {
		return nil, Stats{}, fmt.Errorf("%w: input shorter than class file header", model.ErrMalformedClassFile)
	}

	poolSize := binary.BigEndian.Uint16(input[8:10])

	plan, err := discover(input, poolSize, table)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{}
	for _, rec := range plan {
		stats.Replacements += len(rec.Replacements)
	}

	if len(plan) == 0 {
		return input, stats, nil
	}

	output, err := materialize(input, plan, table)
	if err != nil {
		return nil, Stats{}, err
	}
	return output, stats, nil
}

// discover runs pass 1: walk the constant pool, scanning every Utf8
// entry's payload for matches, and accumulate a PatchPlan.
func discover(input []byte, poolSize uint16, table *mapping.Table) (model.PatchPlan, error) {
	var plan model.PatchPlan

	_, err := pool.Walk(input, poolSize, headerSize, func(e pool.Entry) error {
		if e.Kind != model.KindUtf8 {
			return nil
		}
		if rec, ok := scan(input, e.PayloadOffset, e.PayloadOffset+e.PayloadLength, table); ok {
			plan = append(plan, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// scan looks for non-overlapping mapping matches inside input[begin:end]
// and, if any are found, returns a PatchRecord describing them.
//
// Scanning is left-to-right; at each byte position the mapping entries
// are tried in order and the first match wins. The no-overlap invariant
// on the table guarantees this is unambiguous. On a match at position i
// with a from-length of L, the next candidate position is i+L.
func scan(input []byte, begin, end int, table *mapping.Table) (model.PatchRecord, bool) {
	minFrom := table.MinFromLength()
	entries := table.Entries()

	var rec model.PatchRecord
	found := false

	for i := begin; i <= end-minFrom; {
		matchedIndex, matchedLen := 0, 0

		for j := 1; j < len(entries); j++ {
			from := entries[j].From
			if end-i < len(from) {
				continue
			}
			if bytes.Equal(input[i:i+len(from)], from) {
				matchedIndex = j
				matchedLen = len(from)
				break
			}
		}

		if matchedIndex == 0 {
			i++
			continue
		}

		if !found {
			rec = model.PatchRecord{
				EntryBodyOffset: begin,
				Replacements:    make([]model.Replacement, 0, ((end-i)/minFrom)+2),
			}
			found = true
		}

		rec.Replacements = append(rec.Replacements, model.Replacement{
			MappingIndex: matchedIndex,
			MatchOffset:  i,
		})
		rec.NetLengthDelta += len(entries[matchedIndex].To) - len(entries[matchedIndex].From)

		i += matchedLen
	}

	return rec, found
}

// materialize runs pass 2: allocate an output buffer sized to account
// for every record's NetLengthDelta, then copy the input into it while
// applying each record's replacements and fixing up Utf8 length
// prefixes.
func materialize(input []byte, plan model.PatchPlan, table *mapping.Table) ([]byte, error) {
	entries := table.Entries()
	output := make([]byte, len(input)+plan.TotalDelta())

	copy(output[:headerSize], input[:headerSize])
	src, dst := headerSize, headerSize

	for _, rec := range plan {
		// Copy everything up to and including this entry's tag byte and
		// length prefix (and any intervening non-Utf8 entries).
		lead := rec.EntryBodyOffset - src
		copy(output[dst:dst+lead], input[src:src+lead])
		src += lead
		dst += lead

		origLen := binary.BigEndian.Uint16(input[src-2 : src])
		newLen := int(origLen) + rec.NetLengthDelta
		if newLen < 0 || newLen > 0xFFFF {
			return nil, fmt.Errorf("%w: entry at offset %d would become %d bytes", model.ErrLengthOverflow, rec.EntryBodyOffset, newLen)
		}
		binary.BigEndian.PutUint16(output[dst-2:dst], uint16(newLen))

		for _, r := range rec.Replacements {
			gap := r.MatchOffset - src
			copy(output[dst:dst+gap], input[src:src+gap])
			src += gap
			dst += gap

			entry := entries[r.MappingIndex]
			copy(output[dst:dst+len(entry.To)], entry.To)
			src += len(entry.From)
			dst += len(entry.To)
		}
	}

	copy(output[dst:], input[src:])

	return output, nil
}
