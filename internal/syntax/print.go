package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) printList(label string, list []Expr) {
	if len(list) == 0 {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, x := range list {
		p.print(x)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		p.printf("Package: %s\n", n.PkgName.Value)
		for _, imp := range n.Imports {
			p.print(imp)
		}
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *ImportDecl:
		p.printf("ImportDecl %s %s\n", n.pos, n.Path.Value)

	case *ClassDecl:
		kind := "ClassDecl"
		if n.Interface {
			kind = "InterfaceDecl"
		}
		p.printf("%s %s\n", kind, n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.TypeParams) > 0 {
			names := make([]string, len(n.TypeParams))
			for i, tp := range n.TypeParams {
				names[i] = tp.Value
			}
			p.printf("TypeParams: %s\n", strings.Join(names, ", "))
		}
		p.printList("Extends", n.Extends)
		p.printList("Implements", n.Implements)
		for _, m := range n.Members {
			p.print(m)
		}
		p.indent--

	case *FieldDecl:
		p.printf("FieldDecl %s %s %s\n", n.pos, n.Name.Value, ExprString(n.Type))

	case *MethodDecl:
		p.printf("MethodDecl %s %s\n", n.pos, n.Name.Value)
		p.indent++
		p.printf("Result: %s\n", ExprString(n.Result))
		for _, pr := range n.Params {
			p.printf("Param %s %s\n", pr.Name.Value, ExprString(pr.Type))
		}
		p.printList("Throws", n.Throws)
		p.indent--

	case *Name, *SelectorExpr:
		p.printf("Name %s\n", ExprString(n.(Expr)))

	case *GenericType:
		p.printf("GenericType %s\n", ExprString(n.Base))
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *ArrayType:
		p.printf("ArrayType\n")
		p.indent++
		p.print(n.Elem)
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}
