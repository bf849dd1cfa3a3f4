// Package syntax implements lexical analysis and parsing of typegraph
// declaration files (.tg) and standalone type expressions.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	_Name // identifier: List, T, java_lang

	// Delimiters
	_Lss    // <
	_Gtr    // >
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Dot    // .

	// Keywords
	_Class
	_Extends
	_Implements
	_Import
	_Interface
	_Package
	_Throws

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name: "NAME",

	_Lss:    "<",
	_Gtr:    ">",
	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Dot:    ".",

	_Class:      "class",
	_Extends:    "extends",
	_Implements: "implements",
	_Import:     "import",
	_Interface:  "interface",
	_Package:    "package",
	_Throws:     "throws",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Class && t <= _Throws
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords maps keyword strings to their token type.
// Predeclared class names (int, void, Object, List, ...) are not
// keywords; they are scanned as _Name and bound in the universe scope.
var keywords = map[string]Token{
	"class":      _Class,
	"extends":    _Extends,
	"implements": _Implements,
	"import":     _Import,
	"interface":  _Interface,
	"package":    _Package,
	"throws":     _Throws,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
