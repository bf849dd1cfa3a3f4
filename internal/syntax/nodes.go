package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 classes of nodes: type expressions, class declarations and
// class members. All nodes implement the Node interface.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	End() Pos // position of first character immediately after the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for type expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Decl is the interface for top-level declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Member is the interface for class member declarations.
type Member interface {
	Node
	MemberName() *Name
	aMember()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) End() Pos { return n.pos } // default: return start position
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type decl struct{ node }

func (*decl) aDecl() {}

type member struct{ node }

func (*member) aMember() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents a complete declaration file.
type File struct {
	node
	PkgName *Name         // package name
	Imports []*ImportDecl // import declarations
	Decls   []Decl        // class and interface declarations
}

// ImportDecl represents an import declaration: import name;
type ImportDecl struct {
	decl
	Path *Name // imported package name
}

// ClassDecl represents a class or interface declaration.
// class Name<T, U> extends Super implements I1, I2 { Members }
type ClassDecl struct {
	decl
	Interface  bool     // declared with "interface"
	Name       *Name    // class name
	TypeParams []*Name  // declared type variables, in order
	Extends    []Expr   // extends clause (at most one for classes)
	Implements []Expr   // implements clause (classes only)
	Members    []Member // fields and methods
	Rbrace     Pos      // position of closing brace
}

// End returns the position after the closing brace.
func (d *ClassDecl) End() Pos { return d.Rbrace }

// FieldDecl represents a field declaration: Type Name;
type FieldDecl struct {
	member
	Type Expr
	Name *Name
}

// MemberName implements Member.
func (d *FieldDecl) MemberName() *Name { return d.Name }

// MethodDecl represents a method declaration:
// Result Name(Params) throws Throws;
type MethodDecl struct {
	member
	Result Expr     // result type ("void" for no result)
	Name   *Name    // method name
	Params []*Param // parameter list
	Throws []Expr   // declared exception types
}

// MemberName implements Member.
func (d *MethodDecl) MemberName() *Name { return d.Name }

// Param represents a single method parameter: Type Name.
type Param struct {
	node
	Type Expr
	Name *Name
}

// ----------------------------------------------------------------------------
// Type expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// SelectorExpr represents a package-qualified class name: X.Sel
type SelectorExpr struct {
	expr
	X   *Name // package name
	Sel *Name // class name
}

// GenericType represents a parameterized type: Base<Args...>
type GenericType struct {
	expr
	Base   Expr   // Name or SelectorExpr
	Args   []Expr // type arguments
	Rangle Pos    // position of closing '>'
}

// End returns the position of the closing '>'.
func (g *GenericType) End() Pos { return g.Rangle }

// ArrayType represents an array type: Elem[]
type ArrayType struct {
	expr
	Elem   Expr
	Rbrack Pos // position of closing ']'
}

// End returns the position of the closing ']'.
func (a *ArrayType) End() Pos { return a.Rbrack }

// ExprString returns the source form of a type expression.
func ExprString(e Expr) string {
	switch e := e.(type) {
	case *Name:
		return e.Value
	case *SelectorExpr:
		return e.X.Value + "." + e.Sel.Value
	case *GenericType:
		s := ExprString(e.Base) + "<"
		for i, a := range e.Args {
			if i > 0 {
				s += ", "
			}
			s += ExprString(a)
		}
		return s + ">"
	case *ArrayType:
		return ExprString(e.Elem) + "[]"
	case nil:
		return "<nil>"
	}
	return "<bad expr>"
}
