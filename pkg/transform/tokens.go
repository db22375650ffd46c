package transform

import (
	"iter"

	"github.com/yaklabco/tsblank/pkg/scan"
)

// tokens scans src[start:end] and yields tokens with offsets into src.
func (e *eraser) tokens(start, end int) iter.Seq[scan.Token] {
	return func(yield func(scan.Token) bool) {
		if start < 0 || end > len(e.src) || start >= end {
			return
		}
		for tok := range scan.Scan(e.src[start:end]) {
			if !yield(tok.Shift(start)) {
				return
			}
		}
	}
}

func (e *eraser) firstToken(start, end int) (scan.Token, bool) {
	for tok := range e.tokens(start, end) {
		return tok, true
	}
	return scan.Token{}, false
}

func (e *eraser) lastToken(start, end int) (scan.Token, bool) {
	var last scan.Token
	found := false
	for tok := range e.tokens(start, end) {
		last, found = tok, true
	}
	return last, found
}

func (e *eraser) firstTokenOf(start, end int, kind scan.Kind) (scan.Token, bool) {
	for tok := range e.tokens(start, end) {
		if tok.Kind == kind {
			return tok, true
		}
	}
	return scan.Token{}, false
}

func (e *eraser) lastTokenOf(start, end int, kind scan.Kind) (scan.Token, bool) {
	var last scan.Token
	found := false
	for tok := range e.tokens(start, end) {
		if tok.Kind == kind {
			last, found = tok, true
		}
	}
	return last, found
}
