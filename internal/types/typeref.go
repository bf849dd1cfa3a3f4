package types

import "strings"

// RefKind tags the four shapes a type reference in a declared signature
// can take. The kind is fixed when the reference is built.
type RefKind int

const (
	PlainClass    RefKind = iota // String, int[], raw List
	Parameterized                // List<String>
	GenericArray                 // T[], List<String>[]
	TypeVariable                 // T
)

var refKindNames = [...]string{
	PlainClass:    "class",
	Parameterized: "parameterized",
	GenericArray:  "generic array",
	TypeVariable:  "type variable",
}

func (k RefKind) String() string {
	if int(k) < len(refKindNames) {
		return refKindNames[k]
	}
	return "ref?"
}

// TypeRef is a generic type reference as written in a signature. Type
// variables inside it are unresolved; binding them needs a context.
type TypeRef interface {
	Kind() RefKind
	String() string
	aTypeRef()
}

type ref struct{}

func (ref) aTypeRef() {}

// ClassRef references a class without type arguments. Array classes whose
// component is itself a plain class (String[], int[][]) are also ClassRefs.
type ClassRef struct {
	ref
	class *Class
}

// NewClassRef creates a plain class reference.
func NewClassRef(c *Class) *ClassRef { return &ClassRef{class: c} }

func (r *ClassRef) Kind() RefKind  { return PlainClass }
func (r *ClassRef) Class() *Class  { return r.class }
func (r *ClassRef) String() string { return r.class.String() }

// ParameterizedRef references a generic class applied to type arguments.
type ParameterizedRef struct {
	ref
	raw  *Class
	args []TypeRef
}

// NewParameterizedRef creates raw<args...>.
func NewParameterizedRef(raw *Class, args ...TypeRef) *ParameterizedRef {
	return &ParameterizedRef{raw: raw, args: args}
}

func (r *ParameterizedRef) Kind() RefKind   { return Parameterized }
func (r *ParameterizedRef) Raw() *Class     { return r.raw }
func (r *ParameterizedRef) Args() []TypeRef { return r.args }

func (r *ParameterizedRef) String() string {
	var b strings.Builder
	b.WriteString(r.raw.String())
	b.WriteByte('<')
	for i, a := range r.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte('>')
	return b.String()
}

// GenericArrayRef references an array whose component is a type variable,
// a parameterized type or another generic array.
type GenericArrayRef struct {
	ref
	elem TypeRef
}

// NewGenericArrayRef creates elem[].
func NewGenericArrayRef(elem TypeRef) *GenericArrayRef { return &GenericArrayRef{elem: elem} }

func (r *GenericArrayRef) Kind() RefKind  { return GenericArray }
func (r *GenericArrayRef) Elem() TypeRef  { return r.elem }
func (r *GenericArrayRef) String() string { return r.elem.String() + "[]" }

// TypeVarRef references a type variable.
type TypeVarRef struct {
	ref
	v *TypeVar
}

// NewTypeVarRef creates a reference to v.
func NewTypeVarRef(v *TypeVar) *TypeVarRef { return &TypeVarRef{v: v} }

func (r *TypeVarRef) Kind() RefKind  { return TypeVariable }
func (r *TypeVarRef) Var() *TypeVar  { return r.v }
func (r *TypeVarRef) String() string { return r.v.name }

// ArrayOf returns the reference for elem[], choosing the plain array class
// when elem is a plain class and a generic array otherwise.
func ArrayOf(elem TypeRef) TypeRef {
	if cr, ok := elem.(*ClassRef); ok {
		return NewClassRef(cr.class.ArrayClass())
	}
	return NewGenericArrayRef(elem)
}
