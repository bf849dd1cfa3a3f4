// Package check turns parsed declaration files into the class model of
// package types: it declares classes and type variables, resolves
// supertypes and member signatures, and rejects ill-formed hierarchies.
package check

import (
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Config specifies the configuration for checking.
type Config struct {
	// Error is called for each error.
	// If nil, errors are silently ignored.
	Error ErrorHandler
}

// Importer resolves imported package names to checked packages.
type Importer interface {
	Import(name string) (*types.Package, error)
}

// ImporterFunc adapts a function to the Importer interface.
type ImporterFunc func(name string) (*types.Package, error)

// Import implements Importer.
func (f ImporterFunc) Import(name string) (*types.Package, error) { return f(name) }

// Info holds name-resolution results.
type Info struct {
	// Defs maps defining identifiers (class names, type parameters) to
	// their objects.
	Defs map[*syntax.Name]types.Object

	// Uses maps identifiers in type expressions to the objects they denote.
	Uses map[*syntax.Name]types.Object

	// Refs maps checked type expressions to the references built for them.
	Refs map[syntax.Expr]types.TypeRef
}

// Check checks the files of one package. All files must declare the same
// package name. imp may be nil if no file has imports.
// It returns the package and the first error encountered, if any.
func Check(files []*syntax.File, conf *Config, imp Importer, info *Info) (*types.Package, error) {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
		if info.Refs == nil {
			info.Refs = make(map[syntax.Expr]types.TypeRef)
		}
	}

	c := newChecker(conf, imp, info)
	c.checkFiles(files, nil)

	if c.errors > 0 {
		return c.pkg, c.first
	}
	return c.pkg, nil
}
