package edit

import (
	"bytes"
	"sort"
)

// queued pairs an edit with its queue position for stable ordering.
type queued struct {
	TextEdit
	seq int
}

// orderEdits returns edits in application order: descending start, then
// descending end, then last-queued first. Insertions queued at the same
// offset therefore appear in the output in the order they were queued.
func orderEdits(edits []TextEdit) []queued {
	ordered := make([]queued, len(edits))
	for i, e := range edits {
		ordered[i] = queued{TextEdit: e, seq: i}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.StartOffset != b.StartOffset {
			return a.StartOffset > b.StartOffset
		}
		if a.EndOffset != b.EndOffset {
			return a.EndOffset > b.EndOffset
		}
		return a.seq > b.seq
	})
	return ordered
}

// checkOrder verifies that each edit, in application order, lies entirely
// before the previously applied one.
func checkOrder(ordered []queued) error {
	for i := 1; i < len(ordered); i++ {
		prev, curr := ordered[i-1], ordered[i]
		if curr.StartOffset > prev.StartOffset || curr.EndOffset > prev.StartOffset {
			return &ConflictError{Edit: curr.TextEdit, Previous: prev.TextEdit}
		}
	}
	return nil
}

// ApplyEdits applies edits to content after ordering and checking them.
// Ranges must already be valid for content.
func ApplyEdits(content []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return content, nil
	}

	ordered := orderEdits(edits)
	if err := checkOrder(ordered); err != nil {
		return nil, err
	}

	delta := 0
	for _, e := range ordered {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	// Walk the descending order backwards so content is copied front to back.
	cursor := 0
	for i := len(ordered) - 1; i >= 0; i-- {
		e := ordered[i]
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}
