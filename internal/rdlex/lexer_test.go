package rdlex

import "testing"

func collectTypes(l *Lexer) []TokenType {
	var types []TokenType
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == TokenEOF {
			return types
		}
	}
}

func TestLexerTotality(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"\\name{foo}",
		"100% still text",
		"a % comment\nmore",
		"\\\\ \\{ \\} \\%",
		"\\S3method{print}{foo}",
		"[not a link] \\link[pkg]{topic}",
	}
	for _, src := range cases {
		l := New([]byte(src))
		types := collectTypes(l)
		if types[len(types)-1] != TokenEOF {
			t.Fatalf("source %q: stream did not end in EOF", src)
		}
	}
}

func TestLexerEscapes(t *testing.T) {
	l := New([]byte(`\%\\\{\}`))
	want := []string{"%", "\\", "{", "}"}
	for i, w := range want {
		tok := l.Next()
		if tok.Type != TokenText || tok.Literal != w {
			t.Fatalf("escape %d: got %v %q, want Text %q", i, tok.Type, tok.Literal, w)
		}
	}
	if eof := l.Next(); eof.Type != TokenEOF {
		t.Fatalf("expected EOF, got %v", eof.Type)
	}
}

func TestLexerCommandIdentifier(t *testing.T) {
	l := New([]byte(`\item{x}`))
	tok := l.Next()
	if tok.Type != TokenBackslash {
		t.Fatalf("got %v, want Backslash", tok.Type)
	}
	tok = l.Next()
	if tok.Type != TokenIdentifier || tok.Literal != "item" {
		t.Fatalf("got %v %q, want Identifier \"item\"", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != TokenLBrace {
		t.Fatalf("got %v, want LBrace", tok.Type)
	}
}

func TestLexerLineComment(t *testing.T) {
	l := New([]byte("before % a comment\nafter"))
	tok := l.Next()
	if tok.Type != TokenText || tok.Literal != "before " {
		t.Fatalf("got %v %q", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != TokenComment || tok.Literal != " a comment" {
		t.Fatalf("got %v %q, want Comment \" a comment\"", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != TokenNewline {
		t.Fatalf("got %v, want Newline", tok.Type)
	}
}

func TestLexerPercentNotAtCommentStart(t *testing.T) {
	l := New([]byte("100%text"))
	tok := l.Next()
	if tok.Type != TokenText || tok.Literal != "100%text" {
		t.Fatalf("got %v %q, want Text \"100%%text\"", tok.Type, tok.Literal)
	}
}

func TestLexerVerbatimMode(t *testing.T) {
	l := New([]byte(`{raw \stuff % not a comment { nested } more}`))
	tok := l.Next() // outer '{' in normal mode
	if tok.Type != TokenLBrace {
		t.Fatalf("got %v, want LBrace", tok.Type)
	}
	l.PushMode(ModeVerbatim)
	tok = l.Next()
	if tok.Type != TokenText || tok.Literal != "raw \\stuff % not a comment " {
		t.Fatalf("got %v %q", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != TokenLBrace {
		t.Fatalf("got %v, want nested LBrace", tok.Type)
	}
	tok = l.Next()
	if tok.Type != TokenText || tok.Literal != " nested " {
		t.Fatalf("got %v %q", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != TokenRBrace {
		t.Fatalf("got %v, want nested RBrace", tok.Type)
	}
	tok = l.Next()
	if tok.Type != TokenText || tok.Literal != " more" {
		t.Fatalf("got %v %q", tok.Type, tok.Literal)
	}
	l.PopMode()
	tok = l.Next()
	if tok.Type != TokenRBrace {
		t.Fatalf("got %v, want outer RBrace", tok.Type)
	}
}

func TestLexerNormalizesLineEndings(t *testing.T) {
	l := New([]byte("a\r\nb\rc"))
	if string(l.Source()) != "a\nb\nc" {
		t.Fatalf("got %q, want normalized LF source", l.Source())
	}
}

func TestLexerReproducesSourceByteForByte(t *testing.T) {
	src := "\\name{foo} plain % comment\ntext \\{ esc"
	l := New([]byte(src))
	var rebuilt []byte
	for {
		tok := l.Next()
		if tok.Type == TokenEOF {
			break
		}
		rebuilt = append(rebuilt, l.Source()[tok.Start:tok.End]...)
	}
	if string(rebuilt) != src {
		t.Fatalf("got %q, want %q", rebuilt, src)
	}
}
