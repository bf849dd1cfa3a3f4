package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		Walk(n.PkgName, v)
		for _, imp := range n.Imports {
			Walk(imp, v)
		}
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *ImportDecl:
		Walk(n.Path, v)

	case *ClassDecl:
		Walk(n.Name, v)
		for _, tp := range n.TypeParams {
			Walk(tp, v)
		}
		walkExprs(n.Extends, v)
		walkExprs(n.Implements, v)
		for _, m := range n.Members {
			Walk(m, v)
		}

	case *FieldDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *MethodDecl:
		Walk(n.Result, v)
		Walk(n.Name, v)
		for _, pr := range n.Params {
			Walk(pr, v)
		}
		walkExprs(n.Throws, v)

	case *Param:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *SelectorExpr:
		Walk(n.X, v)
		Walk(n.Sel, v)

	case *GenericType:
		Walk(n.Base, v)
		walkExprs(n.Args, v)

	case *ArrayType:
		Walk(n.Elem, v)
	}
}

func walkExprs(list []Expr, v Visitor) {
	for _, x := range list {
		Walk(x, v)
	}
}
