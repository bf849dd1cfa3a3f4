package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/you-not-fish/typegraph/internal/manifest"
	"github.com/you-not-fish/typegraph/internal/resolve"
	"github.com/you-not-fish/typegraph/internal/types"
)

// report prints a resolved type and, if requested, its supertypes and
// member types.
func report(w io.Writer, t *resolve.ResolvedType) int {
	fmt.Fprintf(w, "type     %s\n", t)
	fmt.Fprintf(w, "raw      %s\n", t.Raw())
	if f := t.FormalParameters(); len(f) > 0 {
		fmt.Fprintf(w, "formals  %s\n", strings.Join(f, ", "))
	}
	if a := t.ActualParameters(); len(a) > 0 {
		fmt.Fprintf(w, "actuals  %s\n", joinTypes(a))
	}

	if *supers {
		if err := printSupers(w, t); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	if *members {
		if err := printMembers(w, t); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

func printSupers(w io.Writer, t *resolve.ResolvedType) error {
	super, err := resolve.SuperType(t)
	if err != nil {
		return err
	}
	if super != nil {
		fmt.Fprintf(w, "super    %s\n", super)
	}
	ifaces, err := resolve.Interfaces(t)
	if err != nil {
		return err
	}
	if len(ifaces) > 0 {
		fmt.Fprintf(w, "ifaces   %s\n", joinTypes(ifaces))
	}
	all, err := resolve.AllSuperTypes(t)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		fmt.Fprintln(w, "ancestors")
		for _, a := range all {
			fmt.Fprintf(w, "  %s\n", a)
		}
	}
	return nil
}

// printMembers prints every field and method visible in t's hierarchy,
// declaring class first.
func printMembers(w io.Writer, t *resolve.ResolvedType) error {
	classes := append([]*types.Class{t.Raw()}, types.Ancestors(t.Raw())...)
	for _, c := range classes {
		for _, f := range c.Fields() {
			ft, err := resolve.TypeOf(t, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "field    %s %s\n", f, ft)
		}
		for _, m := range c.Methods() {
			ret, err := resolve.ReturnTypeOf(t, m)
			if err != nil {
				return err
			}
			params, err := resolve.ParameterTypesOf(t, m)
			if err != nil {
				return err
			}
			exc, err := resolve.ExceptionTypesOf(t, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "method   %s.%s(%s) %s", c, m.Name(), joinTypes(params), ret)
			if len(exc) > 0 {
				fmt.Fprintf(w, " throws %s", joinTypes(exc))
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// listClasses prints the declared class headers of every package.
func listClasses(w io.Writer, prog *manifest.Program) {
	for _, pkg := range prog.Packages() {
		fmt.Fprintf(w, "package %s\n", pkg.Name())
		for _, c := range pkg.Classes() {
			fmt.Fprintf(w, "  %s\n", header(c))
		}
	}
}

func header(c *types.Class) string {
	var b strings.Builder
	b.WriteString(c.Kind().String())
	b.WriteByte(' ')
	b.WriteString(c.String())
	if tparams := c.TypeParams(); len(tparams) > 0 {
		names := make([]string, len(tparams))
		for i, v := range tparams {
			names[i] = v.Name()
		}
		b.WriteString("<" + strings.Join(names, ", ") + ">")
	}
	if super := c.Super(); super != nil {
		b.WriteString(" extends " + super.String())
	}
	if ifaces := c.Interfaces(); len(ifaces) > 0 {
		names := make([]string, len(ifaces))
		for i, r := range ifaces {
			names[i] = r.String()
		}
		if c.IsInterface() {
			b.WriteString(" extends ")
		} else {
			b.WriteString(" implements ")
		}
		b.WriteString(strings.Join(names, ", "))
	}
	return b.String()
}

func joinTypes(ts []*resolve.ResolvedType) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.String()
	}
	return strings.Join(s, ", ")
}
