package resolve

import "github.com/you-not-fish/typegraph/internal/types"

// MarkerName is the predeclared generic class whose subclasses fix a
// type argument at declaration time:
//
//	class StringList extends Type<List<String>> {}
const MarkerName = "Type"

// Capture returns the type argument that c binds for the marker class.
// A class that still declares type parameters cannot fix a concrete
// argument and is rejected before any hierarchy walk.
func Capture(c *types.Class) (*ResolvedType, error) {
	if c.IsGeneric() {
		return nil, errorf(IllegalSelfInstantiation, c,
			"generic class cannot capture a type argument; declare a subclass that binds %s's type parameters", c)
	}
	marker := types.Predeclared(MarkerName)
	if marker == nil || !types.IsSubclass(c, marker) {
		return nil, errorf(NotInHierarchy, c, "%s does not extend %s", c, MarkerName)
	}

	// The marker is a class, so only the superclass chain can reach it.
	t := Of(c)
	for t.raw != marker {
		st, err := SuperType(t)
		if err != nil {
			return nil, err
		}
		if st == nil {
			return nil, errorf(NotInHierarchy, c, "%s does not extend %s", c, MarkerName)
		}
		t = st
	}
	if t.IsRaw() {
		return nil, errorf(UnboundTypeVariable, marker.TypeParam(0), "%s extends raw %s", c, MarkerName)
	}
	return t.actuals[0], nil
}
