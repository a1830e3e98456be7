package rderrs

import "fmt"

// UnknownCommandWarning records a \command the lowerer did not recognise.
// The command is still rendered (as opaque inline code) but the warning
// lets callers flag incomplete Rd sources.
type UnknownCommandWarning struct {
	Name string
}

func (w *UnknownCommandWarning) Error() string {
	return fmt.Sprintf("unknown command \\%s", w.Name)
}

// DuplicateAliasWarning records an \alias or \name collision resolved by
// the alias index. Winner and Loser are file stems, not topic names.
type DuplicateAliasWarning struct {
	Topic  string
	Winner string
	Loser  string
}

func (w *DuplicateAliasWarning) Error() string {
	return fmt.Sprintf(
		"topic %q declared in both %q and %q; %q wins",
		w.Topic,
		w.Winner,
		w.Loser,
		w.Winner,
	)
}

// InvalidTabularSpecWarning records a \tabular column spec that contains
// characters outside {l,c,r}. The table is still rendered, left-aligned.
type InvalidTabularSpecWarning struct {
	Spec string
}

func (w *InvalidTabularSpecWarning) Error() string {
	return fmt.Sprintf("invalid tabular column spec %q", w.Spec)
}
