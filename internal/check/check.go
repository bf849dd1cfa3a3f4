package check

import (
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Checker is the declaration checker.
type Checker struct {
	conf *Config
	imp  Importer
	info *Info
	pkg  *types.Package

	// Declarations in source order, with the state needed by later phases.
	decls []*classInfo

	// Error tracking
	errors int        // error count
	first  *TypeError // first error
}

// classInfo ties a class declaration to its class, its scope (holding
// the type variables) and the imports of the file it appears in.
type classInfo struct {
	decl    *syntax.ClassDecl
	class   *types.Class
	scope   *types.Scope
	imports map[string]*types.Package
}

func newChecker(conf *Config, imp Importer, info *Info) *Checker {
	return &Checker{conf: conf, imp: imp, info: info}
}

// checkFiles checks files into pkg, creating the package from the first
// file's package clause if pkg is nil.
func (c *Checker) checkFiles(files []*syntax.File, pkg *types.Package) {
	c.pkg = pkg
	for _, f := range files {
		if f.PkgName == nil {
			continue
		}
		if c.pkg == nil {
			c.pkg = types.NewPackage(f.PkgName.Value)
		} else if f.PkgName.Value != c.pkg.Name() {
			c.errorf(f.PkgName.Pos(), "package %s; expected package %s", f.PkgName.Value, c.pkg.Name())
			continue
		}
		imports := c.collectImports(f)
		c.collectDecls(f, imports)
	}
	if c.pkg == nil {
		c.pkg = types.NewPackage("_")
	}

	// Phase 1 (collectDecls): class names and type variables.
	// Phase 2: supertypes.
	for _, ci := range c.decls {
		c.checkHeader(ci)
	}
	// Phase 3: break inheritance cycles so every hierarchy walk terminates.
	c.checkCycles()
	// Phase 4: member signatures.
	for _, ci := range c.decls {
		c.checkMembers(ci)
	}
}

// collectImports resolves the import declarations of f.
func (c *Checker) collectImports(f *syntax.File) map[string]*types.Package {
	imports := make(map[string]*types.Package)
	for _, d := range f.Imports {
		name := d.Path.Value
		if name == c.pkg.Name() {
			c.errorf(d.Pos(), "package %s cannot import itself", name)
			continue
		}
		if _, dup := imports[name]; dup {
			c.errorf(d.Pos(), "%s imported more than once", name)
			continue
		}
		if c.imp == nil {
			c.errorf(d.Pos(), "could not import %s (no importer)", name)
			continue
		}
		p, err := c.imp.Import(name)
		if err != nil {
			c.errorf(d.Pos(), "could not import %s: %v", name, err)
			continue
		}
		imports[name] = p
		c.pkg.AddImport(p)
	}
	return imports
}

// collectDecls declares the classes of f and their type variables.
func (c *Checker) collectDecls(f *syntax.File, imports map[string]*types.Package) {
	for _, d := range f.Decls {
		decl, ok := d.(*syntax.ClassDecl)
		if !ok {
			continue
		}
		kind := types.KindClass
		if decl.Interface {
			kind = types.KindInterface
		}
		class := types.NewClass(decl.Name.Pos(), c.pkg, decl.Name.Value, kind)
		if prev := c.pkg.Scope().Insert(class); prev != nil {
			c.errorf(decl.Name.Pos(), "%s redeclared in this package (previous declaration at %s)", decl.Name.Value, prev.Pos())
			continue
		}
		c.recordDef(decl.Name, class)

		scope := types.NewScope(c.pkg.Scope(), "class "+decl.Name.Value)
		class.SetScope(scope)
		for _, tp := range decl.TypeParams {
			v := class.AddTypeParam(tp.Pos(), tp.Value)
			if prev := scope.Insert(v); prev != nil {
				c.errorf(tp.Pos(), "type parameter %s declared more than once in %s", tp.Value, decl.Name.Value)
				continue
			}
			c.recordDef(tp, v)
		}

		c.decls = append(c.decls, &classInfo{decl: decl, class: class, scope: scope, imports: imports})
	}
}

// checkHeader resolves the extends and implements clauses of a class.
func (c *Checker) checkHeader(ci *classInfo) {
	decl, class := ci.decl, ci.class

	if decl.Interface {
		if len(decl.Implements) > 0 {
			c.errorf(decl.Implements[0].Pos(), "interface %s cannot implement; use extends", class.Name())
		}
		for _, e := range decl.Extends {
			c.addInterface(ci, e)
		}
		return
	}

	if len(decl.Extends) > 1 {
		c.errorf(decl.Extends[1].Pos(), "class %s cannot extend more than one class", class.Name())
	}
	if len(decl.Extends) > 0 {
		if r := c.supertype(ci, decl.Extends[0], false); r != nil {
			class.SetSuper(r)
		}
	} else if root := types.Predeclared("Object"); root != nil && root != class {
		class.SetSuper(types.NewClassRef(root))
	}
	for _, e := range decl.Implements {
		c.addInterface(ci, e)
	}
}

// addInterface resolves an implemented (or, for interfaces, extended)
// interface and records it unless the class already lists it.
func (c *Checker) addInterface(ci *classInfo, e syntax.Expr) {
	r := c.supertype(ci, e, true)
	if r == nil {
		return
	}
	for _, prev := range ci.class.Interfaces() {
		if types.IdenticalRefs(prev, r) {
			c.errorf(e.Pos(), "repeated interface %s", r)
			return
		}
	}
	ci.class.AddInterface(r)
}

// supertype resolves a supertype expression and checks that it names a
// class (wantInterface == false) or an interface (wantInterface == true).
func (c *Checker) supertype(ci *classInfo, e syntax.Expr, wantInterface bool) types.TypeRef {
	r := c.typeExpr(ci.scope, ci.imports, e)
	if r == nil {
		return nil
	}
	switch r.Kind() {
	case types.PlainClass, types.Parameterized:
	default:
		c.errorf(e.Pos(), "cannot inherit from %s %s", r.Kind(), r)
		return nil
	}
	sup := types.Erasure(r)
	switch {
	case sup.IsPrimitive() || sup.IsArray():
		c.errorf(e.Pos(), "cannot inherit from %s", sup)
		return nil
	case wantInterface && !sup.IsInterface():
		c.errorf(e.Pos(), "%s is not an interface", sup)
		return nil
	case !wantInterface && sup.IsInterface():
		c.errorf(e.Pos(), "class %s cannot extend interface %s; use implements", ci.class.Name(), sup)
		return nil
	}
	return r
}

// checkCycles reports classes that inherit from themselves and removes
// the offending edge.
func (c *Checker) checkCycles() {
	for _, ci := range c.decls {
		class := ci.class
		if class.Super() != nil && types.IsSubclass(types.Erasure(class.Super()), class) {
			c.errorf(ci.decl.Name.Pos(), "cyclic inheritance involving %s", class.Name())
			class.SetSuper(nil)
		}
		ifaces := class.Interfaces()
		for i, iface := range ifaces {
			if iface != nil && types.IsSubclass(types.Erasure(iface), class) {
				c.errorf(ci.decl.Name.Pos(), "cyclic inheritance involving %s", class.Name())
				ifaces[i] = nil
			}
		}
		if len(ifaces) > 0 {
			c.compactInterfaces(class)
		}
	}
}

func (c *Checker) compactInterfaces(class *types.Class) {
	var kept []types.TypeRef
	for _, r := range class.Interfaces() {
		if r != nil {
			kept = append(kept, r)
		}
	}
	class.SetInterfaces(kept)
}

// checkMembers resolves field and method signatures of a class.
func (c *Checker) checkMembers(ci *classInfo) {
	class := ci.class
	for _, m := range ci.decl.Members {
		switch m := m.(type) {
		case *syntax.FieldDecl:
			if class.IsInterface() {
				c.errorf(m.Pos(), "interface %s cannot declare field %s", class.Name(), m.Name.Value)
				continue
			}
			if class.LookupField(m.Name.Value) != nil {
				c.errorf(m.Name.Pos(), "field %s redeclared in %s", m.Name.Value, class.Name())
				continue
			}
			typ := c.valueType(ci, m.Type)
			if typ == nil {
				continue
			}
			class.AddField(types.NewField(m.Name.Pos(), m.Name.Value, typ))

		case *syntax.MethodDecl:
			c.checkMethod(ci, m)
		}
	}
}

func (c *Checker) checkMethod(ci *classInfo, m *syntax.MethodDecl) {
	result := c.typeExpr(ci.scope, ci.imports, m.Result)
	ok := result != nil

	params := make([]*types.Param, 0, len(m.Params))
	seen := make(map[string]bool)
	for _, p := range m.Params {
		if seen[p.Name.Value] {
			c.errorf(p.Name.Pos(), "duplicate parameter %s", p.Name.Value)
			ok = false
		}
		seen[p.Name.Value] = true
		typ := c.valueType(ci, p.Type)
		if typ == nil {
			ok = false
			continue
		}
		params = append(params, &types.Param{Name: p.Name.Value, Type: typ})
	}

	var throws []types.TypeRef
	throwable := types.Predeclared("Throwable")
	for _, e := range m.Throws {
		r := c.typeExpr(ci.scope, ci.imports, e)
		if r == nil {
			ok = false
			continue
		}
		if r.Kind() != types.PlainClass || (throwable != nil && !types.IsSubclass(types.Erasure(r), throwable)) {
			c.errorf(e.Pos(), "%s is not a throwable class", r)
			ok = false
			continue
		}
		throws = append(throws, r)
	}

	if ok {
		ci.class.AddMethod(types.NewMethod(m.Name.Pos(), m.Name.Value, result, params, throws))
	}
}

// valueType resolves a type expression that must denote a value type
// (anything but void).
func (c *Checker) valueType(ci *classInfo, e syntax.Expr) types.TypeRef {
	r := c.typeExpr(ci.scope, ci.imports, e)
	if r != nil && types.IsVoid(types.Erasure(r)) {
		c.errorf(e.Pos(), "void is only allowed as a method result")
		return nil
	}
	return r
}

func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
