package resolve

import (
	"fmt"

	"github.com/you-not-fish/typegraph/internal/types"
)

// resolveFunc resolves one kind of type reference in a context.
type resolveFunc func(ref types.TypeRef, ctx *ResolvedType) (*ResolvedType, error)

// resolvers is indexed by RefKind. It is filled in init because the
// entries call back into Resolve.
var resolvers [types.TypeVariable + 1]resolveFunc

func init() {
	resolvers = [...]resolveFunc{
		types.PlainClass:    resolveClass,
		types.Parameterized: resolveParameterized,
		types.GenericArray:  resolveGenericArray,
		types.TypeVariable:  resolveTypeVar,
	}
}

// Resolve converts ref into a ResolvedType. Type variables are
// substituted from ctx, which may be nil when ref mentions none. The
// result contains no type variables.
func Resolve(ref types.TypeRef, ctx *ResolvedType) (*ResolvedType, error) {
	if ref == nil {
		return nil, fmt.Errorf("resolve: nil type reference")
	}
	k := ref.Kind()
	if k < 0 || int(k) >= len(resolvers) {
		return nil, fmt.Errorf("resolve: unknown reference kind %v", k)
	}
	return resolvers[k](ref, ctx)
}

// Of resolves a class by itself. Generic classes come back raw.
func Of(c *types.Class) *ResolvedType {
	return ofClass(c)
}

func ofClass(c *types.Class) *ResolvedType {
	if c.IsArray() {
		return newArray(ofClass(c.Elem()))
	}
	return newResolved(c, nil)
}

func resolveClass(ref types.TypeRef, _ *ResolvedType) (*ResolvedType, error) {
	return ofClass(ref.(*types.ClassRef).Class()), nil
}

// Type arguments resolve in the context where the reference appears,
// not in the context of the new type.
func resolveParameterized(ref types.TypeRef, ctx *ResolvedType) (*ResolvedType, error) {
	p := ref.(*types.ParameterizedRef)
	args := p.Args()
	actuals := make([]*ResolvedType, len(args))
	for i, arg := range args {
		a, err := Resolve(arg, ctx)
		if err != nil {
			return nil, err
		}
		actuals[i] = a
	}
	return newResolved(p.Raw(), actuals), nil
}

func resolveGenericArray(ref types.TypeRef, ctx *ResolvedType) (*ResolvedType, error) {
	elem, err := Resolve(ref.(*types.GenericArrayRef).Elem(), ctx)
	if err != nil {
		return nil, err
	}
	return newArray(elem), nil
}

// Variables substitute by name; the bound actual is returned as is.
func resolveTypeVar(ref types.TypeRef, ctx *ResolvedType) (*ResolvedType, error) {
	v := ref.(*types.TypeVarRef).Var()
	if ctx == nil {
		return nil, errorf(UnboundTypeVariable, v, "no resolution context for type variable of %s", v.Owner())
	}
	if a, ok := ctx.Actual(v.Name()); ok {
		return a, nil
	}
	if ctx.IsRaw() {
		return nil, errorf(UnboundTypeVariable, v, "context %s is used raw", ctx)
	}
	return nil, errorf(UnboundTypeVariable, v, "%s does not declare type variable %s", ctx, v.Name())
}
