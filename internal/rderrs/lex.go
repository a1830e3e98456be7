package rderrs

import "fmt"

// UnclosedGroupError indicates a brace group was never closed before EOF.
// The lexer itself never fails; the parser raises this both for a
// verbatim group (read with the lexer in verbatim mode) that runs off the
// end of input and for a normal brace group that never saw its matching
// '}'.
type UnclosedGroupError struct {
	OpenedAt int // byte offset of the opening '{'
}

func (e *UnclosedGroupError) Error() string {
	return fmt.Sprintf("unclosed group opened at offset %d", e.OpenedAt)
}
