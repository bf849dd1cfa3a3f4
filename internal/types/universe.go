package types

import "github.com/you-not-fish/typegraph/internal/syntax"

// Universe is the root scope containing all predeclared classes.
var Universe *Scope

// Lang is the package of predeclared classes. Its scope is Universe.
// The primitive classes are defined here; the predeclared reference
// classes (Object, String, List, Map, Type, ...) are declared into Lang by
// the checker at start-up.
var Lang *Package

// LangName is the name of the predeclared package.
const LangName = "lang"

// Primitive class names, in declaration order.
var primitiveNames = []string{
	"boolean", "byte", "char", "short", "int", "long", "float", "double", "void",
}

func init() {
	Universe = NewScope(nil, "universe")
	Lang = &Package{name: LangName, scope: Universe}

	for _, name := range primitiveNames {
		Universe.Insert(NewClass(syntax.NoPos, Lang, name, KindPrimitive))
	}
}

// Predeclared returns the predeclared class with the given name, or nil.
func Predeclared(name string) *Class {
	return Universe.LookupClass(name)
}

// IsVoid reports whether c is the void primitive.
func IsVoid(c *Class) bool {
	return c != nil && c.kind == KindPrimitive && c.name == "void"
}
