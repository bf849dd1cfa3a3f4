package manifest

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/typegraph/internal/check"
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Program is a checked project.
type Program struct {
	Name     string
	packages map[string]*types.Package
	order    []*types.Package
}

// Package returns the checked package with the given name, or nil.
// A nil Program has no packages.
func (prog *Program) Package(name string) *types.Package {
	if prog == nil {
		return nil
	}
	return prog.packages[name]
}

// Packages returns the packages in dependency order.
func (prog *Program) Packages() []*types.Package {
	if prog == nil {
		return nil
	}
	return prog.order
}

// Lookup finds a class by qualified name ("geom.Point"). An unqualified
// name denotes a predeclared class.
func (prog *Program) Lookup(name string) *types.Class {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return types.Predeclared(name)
	}
	pkgName, className := name[:i], name[i+1:]
	if pkgName == types.LangName {
		return types.Predeclared(className)
	}
	pkg := prog.Package(pkgName)
	if pkg == nil {
		return nil
	}
	return pkg.Lookup(className)
}

// Build parses every listed file concurrently, then checks the packages
// in import order. Diagnostics go to errh, which may be nil; the first
// one is returned as the error.
func (p *Project) Build(ctx context.Context, errh check.ErrorHandler) (*Program, error) {
	var mu sync.Mutex
	report := func(pos syntax.Pos, msg string) {
		if errh == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		errh(pos, msg)
	}

	files, err := p.parseAll(ctx, report)
	if err != nil {
		return nil, err
	}

	order, err := p.importOrder(files)
	if err != nil {
		return nil, err
	}

	prog := &Program{Name: p.Name, packages: make(map[string]*types.Package)}
	imp := check.ImporterFunc(func(name string) (*types.Package, error) {
		if pkg := prog.packages[name]; pkg != nil {
			return pkg, nil
		}
		return nil, fmt.Errorf("package %s is not part of project %s", name, p.Name)
	})
	conf := &check.Config{Error: report}
	for _, i := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pkg, err := check.Check(files[i], conf, imp, nil)
		if err != nil {
			return nil, err
		}
		prog.packages[pkg.Name()] = pkg
		prog.order = append(prog.order, pkg)
	}
	return prog, nil
}

// parseAll parses the files of every package; files[i] holds the syntax
// of p.Packages[i].
func (p *Project) parseAll(ctx context.Context, report func(syntax.Pos, string)) ([][]*syntax.File, error) {
	files := make([][]*syntax.File, len(p.Packages))
	for i, pkg := range p.Packages {
		files[i] = make([]*syntax.File, len(pkg.Files))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range p.Packages {
		for j, name := range pkg.Files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				f, err := p.parseFile(name, report)
				if err != nil {
					return err
				}
				if f.PkgName.Value != pkg.Name {
					return &check.TypeError{
						Pos: f.PkgName.Pos(),
						Msg: fmt.Sprintf("package %s; manifest lists file under %s", f.PkgName.Value, pkg.Name),
					}
				}
				files[i][j] = f
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (p *Project) parseFile(name string, report func(syntax.Pos, string)) (*syntax.File, error) {
	path := p.path(name)
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer fd.Close()

	parser := syntax.NewParser(path, fd, report)
	f := parser.Parse()
	if err := parser.FirstError(); err != nil {
		return nil, err
	}
	return f, nil
}

// importOrder returns package indexes so that every package follows the
// packages it imports. Imports of unknown packages are left for the
// checker to report.
func (p *Project) importOrder(files [][]*syntax.File) ([]int, error) {
	index := make(map[string]int, len(p.Packages))
	for i, pkg := range p.Packages {
		index[pkg.Name] = i
	}

	deps := make([][]int, len(p.Packages))
	for i, pkgFiles := range files {
		seen := make(map[int]bool)
		for _, f := range pkgFiles {
			for _, imp := range f.Imports {
				j, ok := index[imp.Path.Value]
				if !ok || seen[j] {
					continue
				}
				seen[j] = true
				deps[i] = append(deps[i], j)
			}
		}
		sort.Ints(deps[i])
	}

	const (
		visiting = iota + 1
		done
	)
	state := make([]int, len(p.Packages))
	var order []int
	var stack []string
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			cycle := append(stack[slices.Index(stack, p.Packages[i].Name):], p.Packages[i].Name)
			return fmt.Errorf("manifest: import cycle: %s", strings.Join(cycle, " -> "))
		}
		state[i] = visiting
		stack = append(stack, p.Packages[i].Name)
		for _, j := range deps[i] {
			if err := visit(j); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range p.Packages {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}
