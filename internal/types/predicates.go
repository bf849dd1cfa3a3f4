package types

// IdenticalRefs reports whether x and y are structurally identical type
// references. Type variables are identical only if they are the same
// declared variable.
func IdenticalRefs(x, y TypeRef) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Kind() != y.Kind() {
		return false
	}

	switch x := x.(type) {
	case *ClassRef:
		return x.class == y.(*ClassRef).class
	case *ParameterizedRef:
		y := y.(*ParameterizedRef)
		if x.raw != y.raw || len(x.args) != len(y.args) {
			return false
		}
		for i := range x.args {
			if !IdenticalRefs(x.args[i], y.args[i]) {
				return false
			}
		}
		return true
	case *GenericArrayRef:
		return IdenticalRefs(x.elem, y.(*GenericArrayRef).elem)
	case *TypeVarRef:
		return x.v == y.(*TypeVarRef).v
	}
	return false
}

// Erasure returns the raw class of a type reference. Type variables erase
// to Object, since declared variables carry no bounds.
func Erasure(r TypeRef) *Class {
	switch r := r.(type) {
	case *ClassRef:
		return r.class
	case *ParameterizedRef:
		return r.raw
	case *GenericArrayRef:
		if elem := Erasure(r.elem); elem != nil {
			return elem.ArrayClass()
		}
	case *TypeVarRef:
		return Predeclared("Object")
	}
	return nil
}

// IsSubclass reports whether sub is sup or inherits from it through any
// chain of superclasses and interfaces. Type arguments are ignored.
func IsSubclass(sub, sup *Class) bool {
	seen := make(map[*Class]bool)
	var walk func(c *Class) bool
	walk = func(c *Class) bool {
		if c == nil || seen[c] {
			return false
		}
		if c == sup {
			return true
		}
		seen[c] = true
		if c.super != nil && walk(Erasure(c.super)) {
			return true
		}
		for _, iface := range c.ifaces {
			if walk(Erasure(iface)) {
				return true
			}
		}
		return false
	}
	return walk(sub)
}

// Ancestors returns the raw classes reachable from c through superclass
// and interface edges, excluding c, in breadth-first order.
func Ancestors(c *Class) []*Class {
	seen := map[*Class]bool{c: true}
	var out []*Class
	queue := []*Class{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := make([]TypeRef, 0, 1+len(cur.ifaces))
		if cur.super != nil {
			next = append(next, cur.super)
		}
		next = append(next, cur.ifaces...)
		for _, r := range next {
			a := Erasure(r)
			if a == nil || seen[a] {
				continue
			}
			seen[a] = true
			out = append(out, a)
			queue = append(queue, a)
		}
	}
	return out
}
