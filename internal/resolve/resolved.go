// Package resolve builds reified views of generic class types.
//
// A ResolvedType pairs a raw class with the concrete types bound to its
// type parameters. Resolve turns a declared type reference into a
// ResolvedType, substituting type variables from an enclosing context;
// the hierarchy and member queries keep those bindings consistent while
// walking up the declaration model.
package resolve

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/you-not-fish/typegraph/internal/lazy"
	"github.com/you-not-fish/typegraph/internal/types"
)

// ArrayFormal is the synthetic formal parameter name of every array type.
// It is not a valid identifier, so it never shadows a declared variable.
const ArrayFormal = "[]"

// A ResolvedType is an immutable resolved class type. Equality is
// structural over the raw class and the actual parameters.
type ResolvedType struct {
	raw     *types.Class
	formals []string
	actuals []*ResolvedType

	hash *lazy.Value[uint64]
	str  *lazy.Value[string]
}

func newResolved(raw *types.Class, actuals []*ResolvedType) *ResolvedType {
	t := &ResolvedType{raw: raw, actuals: actuals}
	if raw.IsArray() {
		t.formals = []string{ArrayFormal}
	} else if tparams := raw.TypeParams(); len(tparams) > 0 {
		t.formals = make([]string, len(tparams))
		for i, v := range tparams {
			t.formals[i] = v.Name()
		}
	}
	t.hash = lazy.New(t.computeHash)
	t.str = lazy.New(t.computeString)
	return t
}

// newArray wraps a resolved component into its array type.
func newArray(elem *ResolvedType) *ResolvedType {
	return newResolved(elem.raw.ArrayClass(), []*ResolvedType{elem})
}

// Raw returns the erased class.
func (t *ResolvedType) Raw() *types.Class { return t.raw }

// FormalParameters returns the names of the raw class's type variables.
func (t *ResolvedType) FormalParameters() []string { return slices.Clone(t.formals) }

// ActualParameters returns the bound type arguments. The result is empty
// for non-generic classes and for generic classes used raw.
func (t *ResolvedType) ActualParameters() []*ResolvedType { return slices.Clone(t.actuals) }

// IsRaw reports whether t is a generic class used without type arguments.
func (t *ResolvedType) IsRaw() bool { return len(t.formals) > 0 && len(t.actuals) == 0 }

// IsArray reports whether t is an array type.
func (t *ResolvedType) IsArray() bool { return t.raw.IsArray() }

// Elem returns the component type of an array type, or nil.
func (t *ResolvedType) Elem() *ResolvedType {
	if !t.raw.IsArray() {
		return nil
	}
	return t.actuals[0]
}

// Actual returns the type bound to the formal parameter name.
func (t *ResolvedType) Actual(name string) (*ResolvedType, bool) {
	i := slices.Index(t.formals, name)
	if i < 0 || i >= len(t.actuals) {
		return nil, false
	}
	return t.actuals[i], true
}

// Equal reports whether t and u denote the same type.
func (t *ResolvedType) Equal(u *ResolvedType) bool {
	if t == u {
		return true
	}
	if t == nil || u == nil || t.raw != u.raw || len(t.actuals) != len(u.actuals) {
		return false
	}
	if t.hash.Done() && u.hash.Done() && t.hash.Get() != u.hash.Get() {
		return false
	}
	for i := range t.actuals {
		if !t.actuals[i].Equal(u.actuals[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash code consistent with Equal.
func (t *ResolvedType) Hash() uint64 { return t.hash.Get() }

// String returns the type in declaration syntax, for example
// "Map<String, List<Integer>>" or "T[]" resolved to "Integer[]".
func (t *ResolvedType) String() string { return t.str.Get() }

func (t *ResolvedType) computeHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.raw.String()))
	var buf [8]byte
	for _, a := range t.actuals {
		binary.LittleEndian.PutUint64(buf[:], a.Hash())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (t *ResolvedType) computeString() string {
	if t.raw.IsArray() {
		return t.actuals[0].String() + "[]"
	}
	if len(t.actuals) == 0 {
		return t.raw.String()
	}
	var b strings.Builder
	b.WriteString(t.raw.String())
	b.WriteByte('<')
	for i, a := range t.actuals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte('>')
	return b.String()
}
