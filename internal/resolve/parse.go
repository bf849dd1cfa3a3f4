package resolve

import (
	"github.com/you-not-fish/typegraph/internal/check"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Parse resolves a type expression such as "Map<String, List<Integer>>".
// Names resolve in pkg and its imports, or among the predeclared classes
// if pkg is nil. The String form of any ResolvedType parses back to an
// equal value.
func Parse(pkg *types.Package, src string) (*ResolvedType, error) {
	return ParseIn(pkg, nil, src)
}

// ParseIn is like Parse, but the type variables of ctx's raw class are in
// scope and resolve against ctx. Other names still resolve in pkg, even
// when ctx's class is declared elsewhere.
func ParseIn(pkg *types.Package, ctx *ResolvedType, src string) (*ResolvedType, error) {
	var owner *types.Class
	if ctx != nil {
		owner = ctx.raw
	}
	ref, err := check.TypeExpr(pkg, owner, src)
	if err != nil {
		return nil, err
	}
	return Resolve(ref, ctx)
}
