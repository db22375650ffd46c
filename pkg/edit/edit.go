// Package edit provides the text edit buffer that type erasure writes into:
// same-length edits applied in place, variable-length rewrites queued and
// resolved once at the end, and unified diffs between inputs and outputs.
package edit

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error the package returns wraps one of these.
var (
	// ErrInvalidRange indicates an operation on a range outside the source
	// or with end before start.
	ErrInvalidRange = errors.New("invalid range")

	// ErrLengthMismatch indicates a same-length replacement whose text does
	// not match the replaced range.
	ErrLengthMismatch = errors.New("replacement length does not match range")

	// ErrEditConflict indicates overlapping or misordered queued rewrites.
	// It signals a defect in the code producing edits, never bad input.
	ErrEditConflict = errors.New("edit ordering violation")

	// ErrFinalized indicates use of a buffer after Finalize.
	ErrFinalized = errors.New("buffer already finalized")
)

// TextEdit is a queued variable-length replacement keyed to original offsets.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// RangeError describes an operation on an invalid range.
type RangeError struct {
	Op    string
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s [%d:%d] on %d bytes: invalid range", e.Op, e.Start, e.End, e.Len)
}

// Is reports whether target is ErrInvalidRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// ConflictError describes a queued rewrite that overlaps the one applied
// before it during finalization.
type ConflictError struct {
	// Edit is the rewrite being applied.
	Edit TextEdit

	// Previous is the rewrite applied immediately before it.
	Previous TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("edit ordering violation: [%d:%d] overlaps previously applied [%d:%d]",
		e.Edit.StartOffset, e.Edit.EndOffset,
		e.Previous.StartOffset, e.Previous.EndOffset)
}

// Is reports whether target is ErrEditConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrEditConflict
}
