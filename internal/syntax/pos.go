package syntax

import "fmt"

// Pos is a line and column in a declaration file. Predeclared classes
// have no file and carry NoPos.
type Pos struct {
	filename  string
	line, col uint32 // 1-based; col counts bytes
}

// NoPos is the position of everything not read from a file.
var NoPos Pos

func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// IsValid reports whether p was read from a source.
func (p Pos) IsValid() bool { return p.line > 0 }

// String formats p the way compilers do, as "file:line:col". Type
// expressions parsed from a command line have no file name and print as
// "line:col".
func (p Pos) String() string {
	switch {
	case !p.IsValid():
		return "-"
	case p.filename == "":
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
}
