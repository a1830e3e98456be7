// Package rderrs provides centralized error types for the Rd-to-Markdown
// pipeline.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// Error types are organized by domain:
//   - lex.go: unclosed-group errors (including unterminated verbatim regions)
//   - parse.go: parser errors (brace balance, arity, unexpected tokens)
//   - lower.go: non-fatal lowering warnings (diagnostics, not failures)
//   - resolver.go: external package resolution errors (always non-fatal)
package rderrs
