// Package types models the declared entities that generic signatures are
// resolved against: classes and interfaces, their type variables, fields
// and methods, and the type references appearing in their signatures.
//
// The model is filled once by the checker and is read-only afterwards.
package types

import "github.com/you-not-fish/typegraph/internal/syntax"

// Object represents a named declared entity: a class or a type variable.
type Object interface {
	Name() string    // object name
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// TypeVar is a type variable declared by a generic class, e.g. E in List<E>.
type TypeVar struct {
	object
	owner *Class
	index int
}

// Owner returns the class declaring the variable.
func (v *TypeVar) Owner() *Class { return v.owner }

// Index returns the position of the variable in its owner's parameter list.
func (v *TypeVar) Index() int { return v.index }

// String returns the variable name.
func (v *TypeVar) String() string { return v.name }

// Field is a field declared by a class.
type Field struct {
	object
	owner *Class
	typ   TypeRef
}

// NewField creates a field of the given generic type.
func NewField(pos syntax.Pos, name string, typ TypeRef) *Field {
	return &Field{object: object{name: name, pos: pos}, typ: typ}
}

// Owner returns the declaring class. It is set by Class.AddField.
func (f *Field) Owner() *Class { return f.owner }

// Type returns the generic type of the field.
func (f *Field) Type() TypeRef { return f.typ }

func (f *Field) String() string {
	return ownerPrefix(f.owner) + f.name
}

// Param is a method parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Method is a method declared by a class or interface.
type Method struct {
	object
	owner  *Class
	result TypeRef   // generic result type; the void class for no result
	params []*Param  // parameters in order
	throws []TypeRef // declared exception types
}

// NewMethod creates a method with the given signature.
func NewMethod(pos syntax.Pos, name string, result TypeRef, params []*Param, throws []TypeRef) *Method {
	return &Method{
		object: object{name: name, pos: pos},
		result: result,
		params: params,
		throws: throws,
	}
}

// Owner returns the declaring class. It is set by Class.AddMethod.
func (m *Method) Owner() *Class { return m.owner }

// Result returns the generic result type.
func (m *Method) Result() TypeRef { return m.result }

// Params returns the parameter list.
func (m *Method) Params() []*Param { return m.params }

// Throws returns the declared exception types.
func (m *Method) Throws() []TypeRef { return m.throws }

// String returns "Owner.name(T1, T2)".
func (m *Method) String() string {
	s := ownerPrefix(m.owner) + m.name + "("
	for i, p := range m.params {
		if i > 0 {
			s += ", "
		}
		s += p.Type.String()
	}
	return s + ")"
}

func ownerPrefix(c *Class) string {
	if c == nil {
		return ""
	}
	return c.String() + "."
}
