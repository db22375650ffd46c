package edit

import (
	"fmt"
	"strings"
)

// Blank is the filler written over erased bytes.
const Blank = ' '

// Terminator is the statement terminator written by BlankKeepTerminator.
const Terminator = ';'

// Buffer holds an immutable source text and a same-length working copy.
//
// In-place operations (Blank, BlankKeepTerminator, ReplaceSameLength,
// DeleteExcept) mutate the working copy without changing its length or the
// position of any line break, so offsets into the original stay valid for
// every later operation. Rewrite queues a variable-length replacement that is
// resolved by Finalize.
//
// Offsets are byte offsets into the original text. A Buffer is not safe for
// concurrent use.
//
// The first invalid operation is remembered and returned by Err and Finalize;
// operations after it are ignored.
type Buffer struct {
	original  string
	current   []byte
	pending   []TextEdit
	err       error
	finalized bool
}

// NewBuffer creates a buffer over src.
func NewBuffer(src string) *Buffer {
	return &Buffer{
		original: src,
		current:  []byte(src),
	}
}

// Err returns the first error recorded by an operation, if any.
func (b *Buffer) Err() error {
	return b.err
}

// Len returns the length of the source in bytes.
func (b *Buffer) Len() int {
	return len(b.original)
}

// Source returns the original text.
func (b *Buffer) Source() string {
	return b.original
}

// Blank replaces every byte in [start, end) of the working text with a
// space, except spaces, tabs, carriage returns, line feeds and the
// U+2028/U+2029 line separators, which are kept as they are. Multi-byte
// characters become one space per byte.
func (b *Buffer) Blank(start, end int) {
	if !b.check("blank", start, end) {
		return
	}
	b.blank(start, end)
}

// BlankKeepTerminator blanks [start, end) and writes a statement terminator
// over its first byte, so that the erased construct still separates the
// statements around it. Leading line breaks are skipped.
func (b *Buffer) BlankKeepTerminator(start, end int) {
	if !b.check("blank-keep-terminator", start, end) {
		return
	}
	b.blank(start, end)
	for i := start; i < end; i++ {
		// Line breaks survive blanking; the terminator goes on the first
		// byte that is not one.
		if c := b.current[i]; c == ' ' || c == '\t' {
			b.current[i] = Terminator
			return
		}
	}
}

// ReplaceSameLength overwrites [start, end) with text, which must be exactly
// end-start bytes long.
func (b *Buffer) ReplaceSameLength(start, end int, text string) {
	if !b.check("replace", start, end) {
		return
	}
	if len(text) != end-start {
		b.fail(fmt.Errorf("replace [%d:%d] with %q: %w", start, end, text, ErrLengthMismatch))
		return
	}
	copy(b.current[start:end], text)
}

// DeleteExcept blanks the parts of [start, end) before and after
// [keepStart, keepEnd), which must be nested inside it.
func (b *Buffer) DeleteExcept(start, end, keepStart, keepEnd int) {
	if !b.check("delete-except", start, end) || !b.check("delete-except keep", keepStart, keepEnd) {
		return
	}
	if keepStart < start || keepEnd > end {
		b.fail(fmt.Errorf("delete-except: keep [%d:%d] not inside [%d:%d]: %w",
			keepStart, keepEnd, start, end, ErrInvalidRange))
		return
	}
	b.blank(start, keepStart)
	b.blank(keepEnd, end)
}

// Rewrite queues replacing [start, end) of the working text with text.
// Queued rewrites must not overlap; they are applied by Finalize.
func (b *Buffer) Rewrite(start, end int, text string) {
	if !b.check("rewrite", start, end) {
		return
	}
	b.pending = append(b.pending, TextEdit{StartOffset: start, EndOffset: end, NewText: text})
}

// Insert queues text for insertion at offset.
func (b *Buffer) Insert(offset int, text string) {
	b.Rewrite(offset, offset, text)
}

// Pending returns a copy of the queued rewrites in queue order.
func (b *Buffer) Pending() []TextEdit {
	out := make([]TextEdit, len(b.pending))
	copy(out, b.pending)
	return out
}

// Finalize applies the queued rewrites to the working text and returns the
// result. It fails with the first recorded operation error, or with
// ErrEditConflict if two queued rewrites overlap. A buffer can be finalized
// once.
func (b *Buffer) Finalize() (string, error) {
	if b.finalized {
		return "", ErrFinalized
	}
	if b.err != nil {
		return "", b.err
	}
	b.finalized = true

	out, err := ApplyEdits(b.current, b.pending)
	if err != nil {
		b.err = err
		return "", err
	}
	b.current = nil
	b.pending = nil
	return string(out), nil
}

// Current returns [start, end) of the working text. It returns "" for an
// invalid range.
func (b *Buffer) Current(start, end int) string {
	if !b.valid(start, end) || b.current == nil {
		return ""
	}
	return string(b.current[start:end])
}

// Original returns [start, end) of the original text. It returns "" for an
// invalid range.
func (b *Buffer) Original(start, end int) string {
	if !b.valid(start, end) {
		return ""
	}
	return b.original[start:end]
}

// OriginalAt returns the original byte at offset, or 0 past either end.
func (b *Buffer) OriginalAt(offset int) byte {
	if offset < 0 || offset >= len(b.original) {
		return 0
	}
	return b.original[offset]
}

// HasNewline reports whether [start, end) of the original contains a line
// break.
func (b *Buffer) HasNewline(start, end int) bool {
	if !b.valid(start, end) {
		return false
	}
	return strings.ContainsAny(b.original[start:end], "\n\r\u2028\u2029")
}

func (b *Buffer) valid(start, end int) bool {
	return start >= 0 && start <= end && end <= len(b.original)
}

func (b *Buffer) check(op string, start, end int) bool {
	if b.finalized {
		b.fail(fmt.Errorf("%s: %w", op, ErrFinalized))
		return false
	}
	if b.err != nil {
		return false
	}
	if !b.valid(start, end) {
		b.fail(&RangeError{Op: op, Start: start, End: end, Len: len(b.original)})
		return false
	}
	return true
}

func (b *Buffer) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Buffer) blank(start, end int) {
	for i := start; i < end; i++ {
		switch b.current[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case 0xE2:
			// U+2028 and U+2029 encode as E2 80 A8 and E2 80 A9.
			if i+2 < end && b.current[i+1] == 0x80 &&
				(b.current[i+2] == 0xA8 || b.current[i+2] == 0xA9) {
				i += 2
				continue
			}
		}
		b.current[i] = Blank
	}
}
