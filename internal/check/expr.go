package check

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// TypeExpr parses and checks a standalone type expression such as
// "Map<String, List<T>>". Names resolve in pkg and its imports (in the
// predeclared package if pkg is nil). If owner is non-nil, its type
// variables are in scope too, shadowing classes of the same name; owner
// may belong to another package.
func TypeExpr(pkg *types.Package, owner *types.Class, src string) (types.TypeRef, error) {
	p := syntax.NewParser("", strings.NewReader(src), nil)
	x := p.ParseTypeExpr()
	if err := p.FirstError(); err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}

	if pkg == nil {
		pkg = types.Lang
	}
	c := newChecker(&Config{}, nil, nil)
	c.pkg = pkg

	scope := pkg.Scope()
	if owner != nil {
		scope = types.NewTypeParamScope(scope, owner)
	}

	imports := make(map[string]*types.Package)
	for _, imp := range pkg.Imports() {
		imports[imp.Name()] = imp
	}

	r := c.typeExpr(scope, imports, x)
	if c.errors > 0 {
		return nil, c.first
	}
	return r, nil
}
