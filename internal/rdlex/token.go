// Package rdlex tokenizes Rd (R documentation) source text for
// internal/rdparser.
package rdlex

// TokenType classifies a lexical token produced by the lexer.
type TokenType uint8

const (
	// TokenBackslash is a single unescaped '\' that begins a command.
	TokenBackslash TokenType = iota
	// TokenIdentifier is the command name following TokenBackslash
	// (e.g. "item", "S3method").
	TokenIdentifier
	// TokenLBrace is an unescaped '{'.
	TokenLBrace
	// TokenRBrace is an unescaped '}'.
	TokenRBrace
	// TokenLBracket is an unescaped '['.
	TokenLBracket
	// TokenRBracket is an unescaped ']'.
	TokenRBracket
	// TokenText is a run of literal text, with any recognised escape
	// already decoded into Literal.
	TokenText
	// TokenNewline is a single line break (source is normalized to LF
	// before lexing begins).
	TokenNewline
	// TokenComment is a '%' line comment; Literal holds the raw text
	// after '%' up to (not including) the terminating newline.
	TokenComment
	// TokenEOF signals end of input; Start == End == len(source).
	TokenEOF
)

// String returns a human-readable token type name, for diagnostics.
func (t TokenType) String() string {
	switch t {
	case TokenBackslash:
		return "Backslash"
	case TokenIdentifier:
		return "Identifier"
	case TokenLBrace:
		return "LBrace"
	case TokenRBrace:
		return "RBrace"
	case TokenLBracket:
		return "LBracket"
	case TokenRBracket:
		return "RBracket"
	case TokenText:
		return "Text"
	case TokenNewline:
		return "Newline"
	case TokenComment:
		return "Comment"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit with its byte span in the (LF-normalized)
// source. Literal carries decoded text for TokenText/TokenIdentifier/
// TokenComment and is empty for purely structural tokens.
type Token struct {
	Type    TokenType
	Start   int
	End     int
	Literal string
}
