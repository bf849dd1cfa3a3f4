package types

import (
	"fmt"
	"sort"
	"strings"
)

// Scope maps names to declared objects. Scopes form a tree rooted at the
// Universe scope: universe -> package -> class (type variables).
//
// A scope only links to its parent. The Universe is shared by every
// package ever checked, so it must not grow with them.
type Scope struct {
	parent  *Scope
	elems   map[string]Object
	comment string // debugging comment (e.g., "package demo", "class Box")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	return &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		comment: comment,
	}
}

// NewTypeParamScope returns a child of parent declaring the type
// variables of c. Unlike Insert, it leaves each variable's own parent
// scope untouched.
func NewTypeParamScope(parent *Scope, c *Class) *Scope {
	s := NewScope(parent, "type parameters of "+c.name)
	for _, v := range c.tparams {
		s.elems[v.name] = v
	}
	return s
}

// Parent returns the parent scope, or nil for the Universe scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Lookup returns the object with the given name in the current scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through all parent scopes.
// Returns the object and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// LookupClass is like LookupParent but only returns classes.
func (s *Scope) LookupClass(name string) *Class {
	obj, _ := s.LookupParent(name)
	c, _ := obj.(*Class)
	return c
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scope %s {\n", s.comment)
	for _, name := range s.Names() {
		switch obj := s.elems[name].(type) {
		case *Class:
			fmt.Fprintf(&buf, "  %s: %s\n", name, obj.Kind())
		default:
			fmt.Fprintf(&buf, "  %s\n", name)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}
