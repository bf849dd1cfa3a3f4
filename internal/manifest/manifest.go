// Package manifest loads a typegraph project: a YAML file naming the
// declaration packages and their source files.
//
//	name: shapes
//	requires: ">= 1.0, < 2"
//	packages:
//	  - name: geom
//	    files: [geom/point.tg, geom/shape.tg]
//	  - name: app
//	    files: [app/main.tg]
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Version is the tool version that manifests' requires constraints are
// matched against.
const Version = "1.2.0"

// Project is a decoded manifest.
type Project struct {
	Name     string    `yaml:"name"`
	Requires string    `yaml:"requires,omitempty"`
	Packages []Package `yaml:"packages"`

	// Dir is the directory that file paths are relative to.
	Dir string `yaml:"-"`
}

// Package lists the files of one declaration package.
type Package struct {
	Name  string   `yaml:"name"`
	Files []string `yaml:"files"`
}

// Parse decodes and validates a manifest. File paths stay relative to
// the current directory until Dir is set.
func Parse(data []byte) (*Project, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest: payload is empty")
	}
	var p Project
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads the manifest at path. Files resolve relative to its
// directory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)
	return p, nil
}

func (p *Project) validate() error {
	if p.Name == "" {
		return fmt.Errorf("manifest: missing project name")
	}
	if err := CheckRequires(p.Requires); err != nil {
		return err
	}
	if len(p.Packages) == 0 {
		return fmt.Errorf("manifest: project %s lists no packages", p.Name)
	}
	seen := make(map[string]bool)
	for i, pkg := range p.Packages {
		switch {
		case pkg.Name == "":
			return fmt.Errorf("manifest: package #%d has no name", i+1)
		case pkg.Name == types.LangName:
			return fmt.Errorf("manifest: package name %s is reserved", pkg.Name)
		case seen[pkg.Name]:
			return fmt.Errorf("manifest: package %s listed more than once", pkg.Name)
		case len(pkg.Files) == 0:
			return fmt.Errorf("manifest: package %s lists no files", pkg.Name)
		}
		seen[pkg.Name] = true
	}
	return nil
}

// CheckRequires reports whether Version satisfies the semver constraint
// expr. An empty constraint accepts any version.
func CheckRequires(expr string) error {
	if expr == "" {
		return nil
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return fmt.Errorf("manifest: requires %q: %w", expr, err)
	}
	v := semver.MustParse(Version)
	if ok, errs := c.Validate(v); !ok {
		if len(errs) > 0 {
			return fmt.Errorf("manifest: typegraph %s does not satisfy %q: %w", Version, expr, errs[0])
		}
		return fmt.Errorf("manifest: typegraph %s does not satisfy %q", Version, expr)
	}
	return nil
}

// path returns the location of a manifest-relative file.
func (p *Project) path(file string) string {
	if filepath.IsAbs(file) || p.Dir == "" {
		return file
	}
	return filepath.Join(p.Dir, file)
}

// Files returns the location of every listed file, in manifest order.
func (p *Project) Files() []string {
	var out []string
	for _, pkg := range p.Packages {
		for _, f := range pkg.Files {
			out = append(out, p.path(f))
		}
	}
	return out
}

// FromFiles builds a project from loose declaration files, grouping them
// by their package clause in order of first appearance.
func FromFiles(name string, paths []string) (*Project, error) {
	p := &Project{Name: name}
	index := make(map[string]int)
	for _, path := range paths {
		pkgName, err := packageClause(path)
		if err != nil {
			return nil, err
		}
		i, ok := index[pkgName]
		if !ok {
			i = len(p.Packages)
			index[pkgName] = i
			p.Packages = append(p.Packages, Package{Name: pkgName})
		}
		p.Packages[i].Files = append(p.Packages[i].Files, path)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// packageClause reads the package name of a declaration file. Syntax
// errors past the package clause are left for Build to report.
func packageClause(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("manifest: %w", err)
	}
	f := syntax.NewParser(path, bytes.NewReader(data), nil).Parse()
	if f.PkgName == nil || f.PkgName.Value == "" {
		return "", fmt.Errorf("manifest: %s: missing package clause", path)
	}
	return f.PkgName.Value, nil
}
