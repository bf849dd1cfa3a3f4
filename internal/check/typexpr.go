package check

import (
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// typeExpr resolves a type expression in scope and returns the type
// reference for it, or nil after reporting an error.
func (c *Checker) typeExpr(scope *types.Scope, imports map[string]*types.Package, e syntax.Expr) types.TypeRef {
	var r types.TypeRef

	switch e := e.(type) {
	case *syntax.Name:
		r = c.typeName(scope, e)
	case *syntax.SelectorExpr:
		if class := c.qualifiedClass(imports, e); class != nil {
			r = types.NewClassRef(class)
		}
	case *syntax.GenericType:
		r = c.genericType(scope, imports, e)
	case *syntax.ArrayType:
		r = c.arrayType(scope, imports, e)
	default:
		c.errorf(e.Pos(), "%T is not a type", e)
	}

	if r != nil && c.info != nil {
		c.info.Refs[e] = r
	}
	return r
}

// typeName resolves an unqualified name to a type variable or a class.
func (c *Checker) typeName(scope *types.Scope, name *syntax.Name) types.TypeRef {
	obj, _ := scope.LookupParent(name.Value)
	if obj == nil {
		c.errorf(name.Pos(), "undefined: %s", name.Value)
		return nil
	}
	c.recordUse(name, obj)

	switch obj := obj.(type) {
	case *types.TypeVar:
		return types.NewTypeVarRef(obj)
	case *types.Class:
		return types.NewClassRef(obj)
	}
	c.errorf(name.Pos(), "%s is not a type", name.Value)
	return nil
}

// qualifiedClass resolves pkg.Name, where pkg is the current package or
// one imported by the file.
func (c *Checker) qualifiedClass(imports map[string]*types.Package, e *syntax.SelectorExpr) *types.Class {
	var pkg *types.Package
	switch {
	case e.X.Value == c.pkg.Name():
		pkg = c.pkg
	case e.X.Value == types.LangName:
		pkg = types.Lang
	default:
		pkg = imports[e.X.Value]
	}
	if pkg == nil {
		c.errorf(e.X.Pos(), "undefined package: %s", e.X.Value)
		return nil
	}
	class := pkg.Lookup(e.Sel.Value)
	if class == nil {
		c.errorf(e.Sel.Pos(), "undefined: %s.%s", e.X.Value, e.Sel.Value)
		return nil
	}
	c.recordUse(e.Sel, class)
	return class
}

// genericType resolves Base<Args...>.
func (c *Checker) genericType(scope *types.Scope, imports map[string]*types.Package, e *syntax.GenericType) types.TypeRef {
	base := c.typeExpr(scope, imports, e.Base)
	if base == nil {
		return nil
	}
	cr, ok := base.(*types.ClassRef)
	if !ok {
		c.errorf(e.Pos(), "%s %s cannot have type arguments", base.Kind(), base)
		return nil
	}
	raw := cr.Class()
	if want := len(raw.TypeParams()); want != len(e.Args) {
		if want == 0 {
			c.errorf(e.Pos(), "%s is not generic", raw)
		} else {
			c.errorf(e.Pos(), "wrong number of type arguments for %s: have %d, want %d", raw, len(e.Args), want)
		}
		return nil
	}

	args := make([]types.TypeRef, len(e.Args))
	for i, a := range e.Args {
		r := c.typeExpr(scope, imports, a)
		if r == nil {
			return nil
		}
		if arg, ok := r.(*types.ClassRef); ok && arg.Class().IsPrimitive() {
			c.errorf(a.Pos(), "primitive type %s cannot be a type argument", r)
			return nil
		}
		args[i] = r
	}
	return types.NewParameterizedRef(raw, args...)
}

// arrayType resolves Elem[].
func (c *Checker) arrayType(scope *types.Scope, imports map[string]*types.Package, e *syntax.ArrayType) types.TypeRef {
	elem := c.typeExpr(scope, imports, e.Elem)
	if elem == nil {
		return nil
	}
	if types.IsVoid(types.Erasure(elem)) {
		c.errorf(e.Pos(), "invalid array of void")
		return nil
	}
	return types.ArrayOf(elem)
}
