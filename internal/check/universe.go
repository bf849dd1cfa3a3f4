package check

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

//go:embed universe.tg
var universeSrc string

func init() {
	if err := declareUniverse(); err != nil {
		panic("check: predeclared classes: " + err.Error())
	}
}

// declareUniverse checks universe.tg into the predeclared package.
func declareUniverse() error {
	p := syntax.NewParser("universe.tg", strings.NewReader(universeSrc), nil)
	f := p.Parse()
	if err := p.FirstError(); err != nil {
		return err
	}
	if f.PkgName.Value != types.LangName {
		return fmt.Errorf("universe declares package %s", f.PkgName.Value)
	}

	c := newChecker(&Config{}, nil, nil)
	c.checkFiles([]*syntax.File{f}, types.Lang)
	if c.errors > 0 {
		return c.first
	}
	return nil
}
