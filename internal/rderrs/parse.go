package rderrs

import "fmt"

// UnexpectedCloseError indicates a '}' was encountered with no matching '{'.
type UnexpectedCloseError struct {
	At int // byte offset of the stray '}'
}

func (e *UnexpectedCloseError) Error() string {
	return fmt.Sprintf("unexpected '}' at offset %d", e.At)
}

// ExpectedGroupError indicates a command required a brace group argument
// that was never found (e.g. "\link" with nothing following it).
type ExpectedGroupError struct {
	AfterCommand string
	At           int
}

func (e *ExpectedGroupError) Error() string {
	return fmt.Sprintf(
		"expected '{' after \\%s at offset %d",
		e.AfterCommand,
		e.At,
	)
}

// BadArityError indicates a command was given the wrong number of brace
// group arguments (e.g. \method{generic} with no class group).
type BadArityError struct {
	Command  string
	Expected int
	Got      int
}

func (e *BadArityError) Error() string {
	return fmt.Sprintf(
		"\\%s expects %d argument(s), got %d",
		e.Command,
		e.Expected,
		e.Got,
	)
}
