package resolve

import "github.com/you-not-fish/typegraph/internal/types"

// SuperType returns the superclass of t with t's type arguments
// substituted, or nil if t's raw class is a root or an interface.
func SuperType(t *ResolvedType) (*ResolvedType, error) {
	super := t.raw.Super()
	if super == nil {
		return nil, nil
	}
	return Resolve(super, t)
}

// Interfaces returns the directly implemented or extended interfaces of
// t, resolved against t.
func Interfaces(t *ResolvedType) ([]*ResolvedType, error) {
	ifaces := t.raw.Interfaces()
	out := make([]*ResolvedType, 0, len(ifaces))
	for _, r := range ifaces {
		it, err := Resolve(r, t)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// directSupers returns the superclass (if any) followed by the interfaces.
func directSupers(t *ResolvedType) ([]*ResolvedType, error) {
	ifaces, err := Interfaces(t)
	if err != nil {
		return nil, err
	}
	super, err := SuperType(t)
	if err != nil {
		return nil, err
	}
	if super == nil {
		return ifaces, nil
	}
	return append([]*ResolvedType{super}, ifaces...), nil
}

// AllSuperTypes returns every distinct ancestor of t, excluding t, in
// breadth-first order with superclasses before interfaces.
func AllSuperTypes(t *ResolvedType) ([]*ResolvedType, error) {
	var out []*ResolvedType
	seen := newTypeSet()
	seen.add(t)
	queue := []*ResolvedType{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next, err := directSupers(cur)
		if err != nil {
			return nil, err
		}
		for _, s := range next {
			if !seen.add(s) {
				continue
			}
			out = append(out, s)
			queue = append(queue, s)
		}
	}
	return out, nil
}

// As returns the view of t as its ancestor class c, for example
// ArrayList<String> as Iterable gives Iterable<String>. It returns t
// itself when its raw class is c.
func As(t *ResolvedType, c *types.Class) (*ResolvedType, error) {
	if !types.IsSubclass(t.raw, c) {
		return nil, errorf(NotInHierarchy, c, "%s is not a supertype of %s", c, t)
	}
	return find(t, c)
}

// find searches the hierarchy of t for the class c: the superclass branch
// first, then each interface branch. Branches that cannot reach c are
// not resolved.
func find(t *ResolvedType, c *types.Class) (*ResolvedType, error) {
	if t.raw == c {
		return t, nil
	}
	if super := t.raw.Super(); super != nil && types.IsSubclass(types.Erasure(super), c) {
		st, err := Resolve(super, t)
		if err != nil {
			return nil, err
		}
		return find(st, c)
	}
	for _, r := range t.raw.Interfaces() {
		if !types.IsSubclass(types.Erasure(r), c) {
			continue
		}
		it, err := Resolve(r, t)
		if err != nil {
			return nil, err
		}
		return find(it, c)
	}
	return nil, errorf(NotInHierarchy, c, "%s is not a supertype of %s", c, t)
}

// typeSet is a set of resolved types keyed by structural equality.
type typeSet struct {
	buckets map[uint64][]*ResolvedType
}

func newTypeSet() *typeSet {
	return &typeSet{buckets: make(map[uint64][]*ResolvedType)}
}

// add inserts t and reports whether it was not already present.
func (s *typeSet) add(t *ResolvedType) bool {
	h := t.Hash()
	for _, u := range s.buckets[h] {
		if u.Equal(t) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], t)
	return true
}
