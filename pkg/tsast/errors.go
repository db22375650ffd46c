package tsast

import "fmt"

// SyntaxError is a parse error at a source position.
type SyntaxError struct {
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}
