package syntax

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// bom is the UTF-8 byte order mark some editors put at the start of a
// declaration file. It is skipped rather than scanned.
var bom = []byte{0xEF, 0xBB, 0xBF}

// source hands the scanner one rune at a time from a declaration file.
// Declaration files are small, so the whole file is buffered.
//
// line and col always describe ch: after nextch returns, (line, col) is
// where ch starts. Columns count bytes, which is what editors jump to
// for the ASCII-only identifiers the language allows.
type source struct {
	buf  []byte
	offs int // offset of the byte after ch

	filename  string
	line, col uint32

	ch rune // -1 at end of input

	errh func(line, col uint32, msg string)
}

func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		ch:       -1,
		errh:     errh,
	}

	buf, err := io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}
	s.buf = bytes.TrimPrefix(buf, bom)
	s.nextch()
	return s
}

// nextch advances to the next rune. A malformed byte is reported once
// and then returned as utf8.RuneError, so the scanner can reject it as
// an unexpected character.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := rune(s.buf[s.offs]), 1
	if r >= utf8.RuneSelf {
		r, width = utf8.DecodeRune(s.buf[s.offs:])
		if r == utf8.RuneError && width == 1 {
			s.error("invalid UTF-8 encoding")
		}
	}
	s.ch = r
	s.offs += width
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

// isLetter reports whether r may appear in an identifier. '$' is allowed
// so that nested class names such as Outer$Inner can be declared.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r == '$'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r separates tokens. Members end with an
// explicit ';', so newlines carry no meaning.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
