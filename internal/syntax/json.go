package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		imports := make([]string, len(n.Imports))
		for i, imp := range n.Imports {
			imports[i] = imp.Path.Value
		}
		decls := make([]interface{}, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = toJSON(d)
		}
		return map[string]interface{}{
			"type":    "File",
			"pos":     n.pos.String(),
			"package": n.PkgName.Value,
			"imports": imports,
			"decls":   decls,
		}

	case *ClassDecl:
		params := make([]string, len(n.TypeParams))
		for i, tp := range n.TypeParams {
			params[i] = tp.Value
		}
		members := make([]interface{}, len(n.Members))
		for i, m := range n.Members {
			members[i] = toJSON(m)
		}
		return map[string]interface{}{
			"type":       "ClassDecl",
			"pos":        n.pos.String(),
			"name":       n.Name.Value,
			"interface":  n.Interface,
			"typeParams": params,
			"extends":    exprStrings(n.Extends),
			"implements": exprStrings(n.Implements),
			"members":    members,
		}

	case *FieldDecl:
		return map[string]interface{}{
			"type":     "FieldDecl",
			"pos":      n.pos.String(),
			"name":     n.Name.Value,
			"typeExpr": ExprString(n.Type),
		}

	case *MethodDecl:
		params := make([]interface{}, len(n.Params))
		for i, pr := range n.Params {
			params[i] = map[string]interface{}{
				"name":     pr.Name.Value,
				"typeExpr": ExprString(pr.Type),
			}
		}
		return map[string]interface{}{
			"type":   "MethodDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"result": ExprString(n.Result),
			"params": params,
			"throws": exprStrings(n.Throws),
		}

	case Expr:
		return map[string]interface{}{
			"type":     "TypeExpr",
			"pos":      n.Pos().String(),
			"typeExpr": ExprString(n),
		}
	}
	return nil
}

func exprStrings(list []Expr) []string {
	out := make([]string, len(list))
	for i, x := range list {
		out[i] = ExprString(x)
	}
	return out
}
