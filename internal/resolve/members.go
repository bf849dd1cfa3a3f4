package resolve

import (
	"fmt"

	"github.com/you-not-fish/typegraph/internal/types"
)

// declaring returns the view of t as the class that declares a member.
func declaring(t *ResolvedType, member fmt.Stringer, owner *types.Class) (*ResolvedType, error) {
	if owner == nil || !types.IsSubclass(t.raw, owner) {
		return nil, errorf(NotInHierarchy, member, "member not declared in the hierarchy of %s", t)
	}
	return find(t, owner)
}

// TypeOf resolves the type of field f as seen from t.
func TypeOf(t *ResolvedType, f *types.Field) (*ResolvedType, error) {
	ctx, err := declaring(t, f, f.Owner())
	if err != nil {
		return nil, err
	}
	return Resolve(f.Type(), ctx)
}

// ReturnTypeOf resolves the result type of method m as seen from t.
func ReturnTypeOf(t *ResolvedType, m *types.Method) (*ResolvedType, error) {
	ctx, err := declaring(t, m, m.Owner())
	if err != nil {
		return nil, err
	}
	return Resolve(m.Result(), ctx)
}

// ParameterTypesOf resolves the parameter types of method m as seen
// from t.
func ParameterTypesOf(t *ResolvedType, m *types.Method) ([]*ResolvedType, error) {
	ctx, err := declaring(t, m, m.Owner())
	if err != nil {
		return nil, err
	}
	params := m.Params()
	refs := make([]types.TypeRef, len(params))
	for i, p := range params {
		refs[i] = p.Type
	}
	return resolveAll(refs, ctx)
}

// ExceptionTypesOf resolves the declared exceptions of method m as seen
// from t.
func ExceptionTypesOf(t *ResolvedType, m *types.Method) ([]*ResolvedType, error) {
	ctx, err := declaring(t, m, m.Owner())
	if err != nil {
		return nil, err
	}
	return resolveAll(m.Throws(), ctx)
}

func resolveAll(refs []types.TypeRef, ctx *ResolvedType) ([]*ResolvedType, error) {
	out := make([]*ResolvedType, len(refs))
	for i, r := range refs {
		rt, err := Resolve(r, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = rt
	}
	return out, nil
}
