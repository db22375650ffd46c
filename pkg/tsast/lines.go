package tsast

import "sort"

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether both line and column are positive.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Lines indexes the line starts of a source text.
type Lines struct {
	src    string
	starts []int
}

// NewLines indexes src. Lines end at '\n'; a preceding '\r' belongs to the
// line break.
func NewLines(src string) *Lines {
	starts := []int{0}
	for i := range len(src) {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Lines{src: src, starts: starts}
}

// Count returns the number of lines. An empty text has one empty line.
func (l *Lines) Count() int {
	return len(l.starts)
}

// Position converts a byte offset to a line and column. Offsets past the end
// clamp to the end of the text; negative offsets return the zero Position.
func (l *Lines) Position(offset int) Position {
	if offset < 0 {
		return Position{}
	}
	offset = min(offset, len(l.src))
	idx := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1
	return Position{Line: idx + 1, Column: offset - l.starts[idx] + 1}
}

// Offset converts a position back to a byte offset.
func (l *Lines) Offset(pos Position) (int, bool) {
	if pos.Line < 1 || pos.Line > len(l.starts) || pos.Column < 1 {
		return 0, false
	}
	offset := l.starts[pos.Line-1] + pos.Column - 1
	if offset > l.lineEnd(pos.Line-1, true) {
		return 0, false
	}
	return offset, true
}

// Line returns the content of a 1-based line without its line break, or ""
// when out of range.
func (l *Lines) Line(line int) string {
	if line < 1 || line > len(l.starts) {
		return ""
	}
	return l.src[l.starts[line-1]:l.lineEnd(line-1, false)]
}

func (l *Lines) lineEnd(idx int, withBreak bool) int {
	end := len(l.src)
	if idx+1 < len(l.starts) {
		end = l.starts[idx+1]
		if withBreak {
			return end
		}
		end--
		if end > l.starts[idx] && l.src[end-1] == '\r' {
			end--
		}
	}
	return end
}
