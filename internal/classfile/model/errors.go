// Package model holds the value types and error taxonomy shared by the
// class-file rewriter's core packages (modutf8, pool, mapping, rewrite).
package model

import "errors"

// Builder errors.
var (
	// ErrInvalidArgument is returned by Builder.Add for a null, empty, or
	// containment-violating mapping entry.
	ErrInvalidArgument = errors.New("invalid mapping argument")

	// ErrIllegalState is returned when a spent Builder is reused, or
	// Build is called with zero entries.
	ErrIllegalState = errors.New("illegal builder state")

	// ErrThreadBindingViolation is returned when a Builder is used from a
	// goroutine other than the one that created it.
	ErrThreadBindingViolation = errors.New("builder used from a different goroutine")
)

// Rewriter errors.
var (
	// ErrUnsupportedClassVersion is returned when the constant pool
	// contains a tag byte the walker does not recognize.
	ErrUnsupportedClassVersion = errors.New("unsupported class version: unknown constant pool tag")

	// ErrMalformedClassFile is returned when the constant pool cursor
	// would advance past the end of the input buffer.
	ErrMalformedClassFile = errors.New("malformed class file: truncated constant pool")

	// ErrLengthOverflow is returned when a patched Utf8 entry's length
	// prefix would exceed the 16-bit field that holds it.
	ErrLengthOverflow = errors.New("patched utf8 entry exceeds 65535 bytes")
)

// MaxInputSize is the largest class-file buffer the shell will hand to
// the core, keeping every byte offset representable in a signed 32-bit
// int as spec.md §5 requires of the external shell.
const MaxInputSize = 1<<31 - 1
