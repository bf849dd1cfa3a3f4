package types

import (
	"sync"

	"github.com/you-not-fish/typegraph/internal/syntax"
)

// ClassKind distinguishes the categories of declared classes.
type ClassKind int

const (
	KindClass     ClassKind = iota // ordinary class
	KindInterface                  // interface
	KindPrimitive                  // int, boolean, void, ...
	KindArray                      // array class, derived from a component class
)

var classKindNames = [...]string{
	KindClass:     "class",
	KindInterface: "interface",
	KindPrimitive: "primitive",
	KindArray:     "array",
}

func (k ClassKind) String() string {
	if int(k) < len(classKindNames) {
		return classKindNames[k]
	}
	return "kind?"
}

// Class is a declared class, interface, primitive or array class. It is the
// erased "raw class" of every type built from it. Classes are compared by
// identity: each declaration yields exactly one *Class, and ArrayClass
// returns one canonical array class per component.
type Class struct {
	object
	pkg     *Package
	kind    ClassKind
	tparams []*TypeVar
	super   TypeRef   // generic superclass; nil for roots, interfaces, primitives
	ifaces  []TypeRef // generic interfaces (extended interfaces for interfaces)
	fields  []*Field
	methods []*Method
	elem    *Class // component class for arrays
	scope   *Scope // declaration scope holding the type variables

	arrayOnce sync.Once
	array     *Class
}

// NewClass creates a new class in pkg. The package may be nil for
// classes that are not part of any package (tests, synthetic classes).
func NewClass(pos syntax.Pos, pkg *Package, name string, kind ClassKind) *Class {
	return &Class{object: object{name: name, pos: pos}, pkg: pkg, kind: kind}
}

// Package returns the declaring package.
func (c *Class) Package() *Package { return c.pkg }

// Kind returns the class kind.
func (c *Class) Kind() ClassKind { return c.kind }

func (c *Class) IsInterface() bool { return c.kind == KindInterface }
func (c *Class) IsPrimitive() bool { return c.kind == KindPrimitive }
func (c *Class) IsArray() bool     { return c.kind == KindArray }

// IsGeneric reports whether the class declares type variables.
func (c *Class) IsGeneric() bool { return len(c.tparams) > 0 }

// AddTypeParam declares the next type variable of c.
func (c *Class) AddTypeParam(pos syntax.Pos, name string) *TypeVar {
	v := &TypeVar{object: object{name: name, pos: pos}, owner: c, index: len(c.tparams)}
	c.tparams = append(c.tparams, v)
	return v
}

// TypeParams returns the declared type variables in order.
func (c *Class) TypeParams() []*TypeVar { return c.tparams }

// TypeParam returns the type variable at index i.
func (c *Class) TypeParam(i int) *TypeVar { return c.tparams[i] }

// Scope returns the scope the class was declared with, or nil for
// classes built outside the checker.
func (c *Class) Scope() *Scope { return c.scope }

// SetScope records the declaration scope.
func (c *Class) SetScope(s *Scope) { c.scope = s }

// Super returns the generic superclass, or nil.
func (c *Class) Super() TypeRef { return c.super }

// SetSuper sets the generic superclass.
func (c *Class) SetSuper(super TypeRef) { c.super = super }

// Interfaces returns the generic interfaces in declaration order.
func (c *Class) Interfaces() []TypeRef { return c.ifaces }

// SetInterfaces replaces the generic interfaces.
func (c *Class) SetInterfaces(ifaces []TypeRef) { c.ifaces = ifaces }

// AddInterface appends a generic interface.
func (c *Class) AddInterface(iface TypeRef) { c.ifaces = append(c.ifaces, iface) }

// Fields returns the declared fields.
func (c *Class) Fields() []*Field { return c.fields }

// AddField declares a field on c.
func (c *Class) AddField(f *Field) {
	f.owner = c
	c.fields = append(c.fields, f)
}

// LookupField returns the field declared directly on c with the given
// name, or nil.
func (c *Class) LookupField(name string) *Field {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Methods returns the declared methods.
func (c *Class) Methods() []*Method { return c.methods }

// AddMethod declares a method on c.
func (c *Class) AddMethod(m *Method) {
	m.owner = c
	c.methods = append(c.methods, m)
}

// LookupMethod returns the first method declared directly on c with the
// given name, or nil.
func (c *Class) LookupMethod(name string) *Method {
	for _, m := range c.methods {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Elem returns the component class of an array class, or nil.
func (c *Class) Elem() *Class { return c.elem }

// ArrayClass returns the canonical array class whose component is c.
func (c *Class) ArrayClass() *Class {
	c.arrayOnce.Do(func() {
		a := &Class{
			object: object{name: c.name + "[]", pos: c.pos},
			pkg:    c.pkg,
			kind:   KindArray,
			elem:   c,
		}
		if obj := Universe.Lookup("Object"); obj != nil {
			if root, ok := obj.(*Class); ok {
				a.super = NewClassRef(root)
			}
		}
		c.array = a
	})
	return c.array
}

// String returns the package-qualified class name; predeclared classes
// are unqualified.
func (c *Class) String() string {
	if c.kind == KindArray {
		return c.elem.String() + "[]"
	}
	if c.pkg == nil || c.pkg.IsUniverse() {
		return c.name
	}
	return c.pkg.name + "." + c.name
}
