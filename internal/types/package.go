package types

// Package is a named set of class declarations. Its scope is a child of
// the Universe scope, except for the predeclared "lang" package whose
// scope is the Universe itself.
type Package struct {
	name    string
	scope   *Scope
	imports []*Package
}

// NewPackage creates a new package with the given name.
func NewPackage(name string) *Package {
	return &Package{
		name:  name,
		scope: NewScope(Universe, "package "+name),
	}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Scope returns the package-level scope.
func (p *Package) Scope() *Scope {
	return p.scope
}

// IsUniverse reports whether p holds the predeclared classes.
func (p *Package) IsUniverse() bool {
	return p.scope == Universe
}

// Imports returns the packages imported by p.
func (p *Package) Imports() []*Package {
	return p.imports
}

// AddImport records an imported package.
func (p *Package) AddImport(imp *Package) {
	for _, q := range p.imports {
		if q == imp {
			return
		}
	}
	p.imports = append(p.imports, imp)
}

// Import returns the imported package with the given name, or nil.
func (p *Package) Import(name string) *Package {
	for _, q := range p.imports {
		if q.name == name {
			return q
		}
	}
	return nil
}

// Lookup returns the class declared in p with the given name, or nil.
func (p *Package) Lookup(name string) *Class {
	c, _ := p.scope.Lookup(name).(*Class)
	return c
}

// Classes returns the classes declared in p, sorted by name.
func (p *Package) Classes() []*Class {
	var classes []*Class
	for _, name := range p.scope.Names() {
		if c, ok := p.scope.Lookup(name).(*Class); ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// String returns the package name.
func (p *Package) String() string {
	return p.name
}
