package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/typegraph/internal/check"
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`
name: demo
requires: "^1.0"
packages:
  - name: a
    files: [a.tg, b.tg]
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)
	require.Len(t, p.Packages, 1)
	assert.Equal(t, []string{"a.tg", "b.tg"}, p.Packages[0].Files)
	assert.Equal(t, []string{"a.tg", "b.tg"}, p.Files())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "  \n", "payload is empty"},
		{"no_name", "packages: [{name: a, files: [a.tg]}]", "missing project name"},
		{"no_packages", "name: x", "lists no packages"},
		{"unnamed_package", "name: x\npackages: [{files: [a.tg]}]", "package #1 has no name"},
		{"reserved", "name: x\npackages: [{name: lang, files: [a.tg]}]", "reserved"},
		{"duplicate", "name: x\npackages: [{name: a, files: [a.tg]}, {name: a, files: [b.tg]}]", "listed more than once"},
		{"no_files", "name: x\npackages: [{name: a}]", "lists no files"},
		{"unknown_field", "name: x\nextra: 1\npackages: [{name: a, files: [a.tg]}]", "decode"},
		{"bad_constraint", "name: x\nrequires: \"not a version\"\npackages: [{name: a, files: [a.tg]}]", "requires"},
		{"unsatisfied", "name: x\nrequires: \">= 9\"\npackages: [{name: a, files: [a.tg]}]", "does not satisfy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckRequires(t *testing.T) {
	assert.NoError(t, CheckRequires(""))
	assert.NoError(t, CheckRequires(">= 1.0"))
	assert.NoError(t, CheckRequires("~1.2"))
	assert.Error(t, CheckRequires("< 1.0"))
}

func TestLoadAndBuild(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "shapes", "typegraph.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "shapes"), p.Dir)
	assert.Equal(t, filepath.Join("testdata", "shapes", "app", "registry.tg"), p.Files()[0])

	var diags []string
	prog, err := p.Build(context.Background(), func(pos syntax.Pos, msg string) {
		diags = append(diags, msg)
	})
	require.NoError(t, err)
	assert.Empty(t, diags)

	// geom is listed last but imported by app, so it is checked first.
	names := make([]string, 0, 2)
	for _, pkg := range prog.Packages() {
		names = append(names, pkg.Name())
	}
	assert.Equal(t, []string{"geom", "app"}, names)

	grid := prog.Lookup("geom.Grid")
	require.NotNil(t, grid)
	assert.Equal(t, "geom.Polygon<Integer>", grid.Super().String())

	named := prog.Lookup("app.Named")
	require.NotNil(t, named)
	assert.Equal(t, "app.Registry<String>", named.Super().String())

	assert.Same(t, types.Predeclared("String"), prog.Lookup("String"))
	assert.Same(t, types.Predeclared("List"), prog.Lookup("lang.List"))
	assert.Nil(t, prog.Lookup("nowhere.Thing"))
	assert.Nil(t, prog.Lookup("geom.Missing"))
	assert.Same(t, prog.Packages()[0], prog.Package("geom"))
	assert.Nil(t, prog.Package("other"))
}

// writeProject lays out a project in a temporary directory.
func writeProject(t *testing.T, manifest string, files map[string]string) *Project {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	path := filepath.Join(dir, "typegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	p, err := Load(path)
	require.NoError(t, err)
	return p
}

func TestBuildImportCycle(t *testing.T) {
	p := writeProject(t, `
name: loop
packages:
  - name: a
    files: [a.tg]
  - name: b
    files: [b.tg]
`, map[string]string{
		"a.tg": "package a; import b; class A {}",
		"b.tg": "package b; import a; class B {}",
	})
	_, err := p.Build(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import cycle: a -> b -> a")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"syntax", map[string]string{"a.tg": "package a; class A {"}, "expected"},
		{"wrong_package", map[string]string{"a.tg": "package z; class A {}"}, "manifest lists file under a"},
		{"undefined", map[string]string{"a.tg": "package a; class A extends Missing {}"}, "undefined: Missing"},
		{"unknown_import", map[string]string{"a.tg": "package a; import q; class A {}"}, "not part of project"},
		{"missing_file", map[string]string{}, "a.tg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeProject(t, "name: bad\npackages: [{name: a, files: [a.tg]}]\n", tt.files)
			var diags []string
			_, err := p.Build(context.Background(), func(pos syntax.Pos, msg string) {
				diags = append(diags, msg)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConcurrentBuilds(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "shapes", "typegraph.yaml"))
	require.NoError(t, err)

	before := types.Universe.Names()
	const n = 8
	progs := make([]*Program, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			prog, err := p.Build(ctx, nil)
			progs[i] = prog
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, prog := range progs {
		grid := prog.Lookup("geom.Grid")
		require.NotNil(t, grid, i)
		assert.Equal(t, "geom.Polygon<Integer>", grid.Super().String())
		if i > 0 {
			assert.NotSame(t, progs[0].Package("geom"), prog.Package("geom"))
		}
	}
	// building never declares anything in the shared universe
	assert.Equal(t, before, types.Universe.Names())
	assert.Nil(t, types.Universe.Lookup("Grid"))
}

func TestBuildCanceled(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "shapes", "typegraph.yaml"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Build(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildReportsAllDiagnostics(t *testing.T) {
	p := writeProject(t, "name: many\npackages: [{name: a, files: [a.tg]}]\n", map[string]string{
		"a.tg": "package a; class A { Missing1 x; Missing2 y; }",
	})
	var diags []string
	_, err := p.Build(context.Background(), check.ErrorHandler(func(pos syntax.Pos, msg string) {
		diags = append(diags, pos.String()+": "+msg)
	}))
	require.Error(t, err)
	require.Len(t, diags, 2)
	assert.True(t, strings.HasSuffix(diags[0], "undefined: Missing1"))
	assert.True(t, strings.HasSuffix(diags[1], "undefined: Missing2"))
}

func TestFromFiles(t *testing.T) {
	dir := filepath.Join("testdata", "shapes")
	paths := []string{
		filepath.Join(dir, "geom", "point.tg"),
		filepath.Join(dir, "app", "registry.tg"),
		filepath.Join(dir, "geom", "shape.tg"),
	}
	p, err := FromFiles("loose", paths)
	require.NoError(t, err)
	require.Len(t, p.Packages, 2)
	assert.Equal(t, "geom", p.Packages[0].Name)
	assert.Equal(t, []string{paths[0], paths[2]}, p.Packages[0].Files)
	assert.Equal(t, "app", p.Packages[1].Name)

	prog, err := p.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, prog.Lookup("app.Grids"))

	_, err = FromFiles("none", nil)
	assert.Error(t, err)
	_, err = FromFiles("missing", []string{filepath.Join(dir, "nope.tg")})
	assert.Error(t, err)
}
