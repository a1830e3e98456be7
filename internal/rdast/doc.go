// Package rdast defines the syntax tree produced by parsing an R
// documentation (Rd) file.
//
// The tree is a closed set of value types: Inline is a sealed interface
// (an unexported marker method prevents types outside this package from
// implementing it) so that every switch over Inline in the lowerer can be
// made exhaustive and caught by lint/compile-time review rather than by a
// runtime default case. Every node is plain data; there are no parent
// back-pointers, matching the "no cyclic references" design constraint
// for this tree.
package rdast
