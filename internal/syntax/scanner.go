package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on declaration sources.
type Scanner struct {
	source // embedded character reader

	tok    Token  // token type
	lit    string // token literal (identifier name or delimiter text)
	tokPos Pos    // token start position

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case s.ch == '/':
		s.nextch()
		if s.ch != '/' {
			s.errorAt(s.tokPos, "unexpected character '/'")
			goto redo
		}
		s.skipLineComment()
		goto redo

	default:
		if !s.scanDelim() {
			s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q", s.ch))
			s.nextch()
			goto redo
		}
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

func (s *Scanner) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos.line, pos.col, msg)
	}
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}

	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanDelim scans a single-character delimiter.
// '>' is never combined with a following '>', so List<List<T>> closes
// with two _Gtr tokens.
func (s *Scanner) scanDelim() bool {
	var tok Token
	switch s.ch {
	case '<':
		tok = _Lss
	case '>':
		tok = _Gtr
	case '(':
		tok = _Lparen
	case ')':
		tok = _Rparen
	case '[':
		tok = _Lbrack
	case ']':
		tok = _Rbrack
	case '{':
		tok = _Lbrace
	case '}':
		tok = _Rbrace
	case ',':
		tok = _Comma
	case ';':
		tok = _Semi
	case '.':
		tok = _Dot
	default:
		return false
	}
	s.tok = tok
	s.lit = tokenNames[tok]
	s.nextch()
	return true
}

// skipLineComment skips a line comment; the leading "//" is already consumed
// up to the second '/'.
func (s *Scanner) skipLineComment() {
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
