package syntax

import "io"

// Maximum number of errors before aborting parse.
const maxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on declaration sources.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	errh   func(pos Pos, msg string)
	errcnt int
	first  error // first error encountered
	abort  bool  // set when the error limit is reached
}

// NewParser creates a new Parser for the given source.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	scanErrh := func(line, col uint32, msg string) {
		p.syntaxErrorAt(NewPos(filename, line, col), msg)
	}
	p.scanner = NewScanner(filename, src, scanErrh)
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String() + ", found " + p.tokDesc())
		p.advance()
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(tok Token) Pos {
	pos := p.pos
	p.want(tok)
	return pos
}

func (p *Parser) tokDesc() string {
	if p.tok == _Name {
		return "name " + p.lit
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	if p.errcnt >= maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = _EOF
	}
}

// advance skips tokens until a synchronization point (';', '}', or a
// declaration keyword) and consumes ';' or '}' so the same error is not
// reported twice.
func (p *Parser) advance() {
	for {
		switch p.tok {
		case _EOF, _Class, _Interface, _Import, _Package:
			return
		case _Semi, _Rbrace:
			p.next()
			return
		}
		p.next()
	}
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses a complete declaration file and returns the AST.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos

	p.want(_Package)
	f.PkgName = p.name()
	p.want(_Semi)

	for !p.abort && p.tok == _Import {
		f.Imports = append(f.Imports, p.importDecl())
	}

	for !p.abort && p.tok != _EOF {
		if d := p.decl(); d != nil {
			f.Decls = append(f.Decls, d)
		}
	}

	return f
}

// ParseTypeExpr parses a single type expression that must span the whole
// input, e.g. "Map<String, List<Integer>>[]".
func (p *Parser) ParseTypeExpr() Expr {
	x := p.type_()
	if p.tok != _EOF {
		p.syntaxError("unexpected " + p.tokDesc() + " after type expression")
	}
	return x
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError("expected identifier, found " + p.tokDesc())
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Declarations

// importDecl parses: import name;
func (p *Parser) importDecl() *ImportDecl {
	d := &ImportDecl{}
	d.pos = p.pos
	p.want(_Import)
	d.Path = p.name()
	p.want(_Semi)
	return d
}

func (p *Parser) decl() Decl {
	switch p.tok {
	case _Class, _Interface:
		return p.classDecl()
	case _Semi:
		p.next()
		return nil
	default:
		p.syntaxError("expected class or interface declaration, found " + p.tokDesc())
		p.advance()
		if p.tok == _Import || p.tok == _Package {
			// misplaced header; skip it entirely
			p.next()
		}
		return nil
	}
}

// classDecl parses a class or interface declaration.
func (p *Parser) classDecl() *ClassDecl {
	d := &ClassDecl{}
	d.pos = p.pos
	d.Interface = p.tok == _Interface
	p.next()

	d.Name = p.name()
	if p.tok == _Lss {
		d.TypeParams = p.typeParams()
	}
	if p.got(_Extends) {
		d.Extends = p.typeList()
	}
	if p.got(_Implements) {
		d.Implements = p.typeList()
	}

	p.want(_Lbrace)
	for !p.abort && p.tok != _Rbrace && p.tok != _EOF {
		if p.tok == _Class || p.tok == _Interface {
			p.syntaxError("nested class declarations are not supported")
			break
		}
		if m := p.memberDecl(); m != nil {
			d.Members = append(d.Members, m)
		}
	}
	d.Rbrace = p.expect(_Rbrace)
	return d
}

// typeParams parses <T, U, ...>
func (p *Parser) typeParams() []*Name {
	p.want(_Lss)
	var names []*Name
	for {
		names = append(names, p.name())
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_Gtr)
	return names
}

// memberDecl parses a field or method declaration.
func (p *Parser) memberDecl() Member {
	pos := p.pos
	typ := p.type_()
	name := p.name()

	if p.tok != _Lparen {
		f := &FieldDecl{Type: typ, Name: name}
		f.pos = pos
		p.want(_Semi)
		return f
	}

	m := &MethodDecl{Result: typ, Name: name}
	m.pos = pos
	m.Params = p.paramList()
	if p.got(_Throws) {
		m.Throws = p.typeList()
	}
	p.want(_Semi)
	return m
}

// paramList parses (T1 p1, T2 p2, ...)
func (p *Parser) paramList() []*Param {
	p.want(_Lparen)
	var params []*Param
	if p.tok != _Rparen {
		for {
			pr := &Param{}
			pr.pos = p.pos
			pr.Type = p.type_()
			pr.Name = p.name()
			params = append(params, pr)
			if !p.got(_Comma) {
				break
			}
		}
	}
	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Type expressions

// typeList parses T1, T2, ...
func (p *Parser) typeList() []Expr {
	var list []Expr
	for {
		list = append(list, p.type_())
		if !p.got(_Comma) {
			break
		}
	}
	return list
}

// type_ parses QualName [ "<" TypeList ">" ] { "[" "]" }.
func (p *Parser) type_() Expr {
	var x Expr = p.name()

	if p.tok == _Dot {
		p.next()
		sel := &SelectorExpr{X: x.(*Name), Sel: p.name()}
		sel.pos = x.Pos()
		x = sel
	}

	if p.tok == _Lss {
		g := &GenericType{Base: x}
		g.pos = x.Pos()
		p.next()
		if p.tok == _Gtr {
			p.syntaxError("empty type argument list")
		} else {
			g.Args = p.typeList()
		}
		g.Rangle = p.expect(_Gtr)
		x = g
	}

	for p.tok == _Lbrack {
		at := &ArrayType{Elem: x}
		at.pos = x.Pos()
		p.next()
		at.Rbrack = p.expect(_Rbrack)
		x = at
	}

	return x
}
