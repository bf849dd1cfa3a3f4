// Package main implements the typegraph command: it loads declaration
// files and answers queries about resolved generic types.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/typegraph/internal/manifest"
	"github.com/you-not-fish/typegraph/internal/resolve"
	"github.com/you-not-fish/typegraph/internal/syntax"
	"github.com/you-not-fish/typegraph/internal/types"
)

// Command flags
var (
	manifestPath = flag.String("m", "", "Project manifest (YAML)")
	resolveExpr  = flag.String("resolve", "", "Resolve a type expression")
	contextExpr  = flag.String("context", "", "Type whose variables are in scope for -resolve")
	pkgName      = flag.String("pkg", "", "Package for unqualified names (default: last package checked)")
	supers       = flag.Bool("supers", false, "Print the supertypes of the result")
	members      = flag.Bool("members", false, "Print the member types of the result")
	capture      = flag.String("capture", "", "Print the type captured by a subclass of Type")
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	trace        = flag.Bool("trace", false, "Output timing trace")
	watch        = flag.Bool("watch", false, "Re-run when an input file changes")
	version      = flag.Bool("version", false, "Print version")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "typegraph %s\n\n", manifest.Version)
		fmt.Fprintf(os.Stderr, "Usage: typegraph [options] [-m typegraph.yaml | file.tg ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("typegraph version %s\n", manifest.Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()

	if *emitTokens || *emitAST {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "error: -emit-tokens and -emit-ast take exactly one input file")
			os.Exit(1)
		}
		if *emitTokens {
			os.Exit(runEmitTokens(args[0]))
		}
		os.Exit(runEmitAST(args[0]))
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		os.Exit(runWatch(ctx, args))
	}

	os.Exit(runQuery(context.Background(), args))
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-12s %q\n", s.Pos(), tok, s.Literal())
		if tok.IsEOF() {
			break
		}
	}

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}
	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	ast := syntax.NewParser(filename, f, errh).Parse()

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, ast); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, ast)
	}

	if len(errs) > 0 {
		return 1
	}
	return 0
}

// tracef prints a phase timing when -trace is set.
func tracef(phase string, start time.Time) {
	if *trace {
		fmt.Fprintf(os.Stderr, "trace: %-8s %v\n", phase, time.Since(start))
	}
}

// loadProgram builds the program named by -m or the file arguments.
// With neither, only predeclared classes are available and the program
// is nil.
func loadProgram(ctx context.Context, args []string) (*manifest.Program, int) {
	var (
		p   *manifest.Project
		err error
	)
	start := time.Now()
	switch {
	case *manifestPath != "":
		if len(args) > 0 {
			fmt.Fprintln(os.Stderr, "error: -m and file arguments are mutually exclusive")
			return nil, 1
		}
		p, err = manifest.Load(*manifestPath)
	case len(args) > 0:
		p, err = manifest.FromFiles("cmdline", args)
	default:
		return nil, 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, 1
	}
	tracef("load", start)

	start = time.Now()
	errors := 0
	errh := func(pos syntax.Pos, msg string) {
		errors++
		fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
	}
	prog, err := p.Build(ctx, errh)
	tracef("build", start)
	if err != nil {
		if errors == 0 {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return nil, 1
	}
	return prog, 0
}

// runQuery loads the inputs and answers the -resolve and -capture
// queries. Without a query it lists the declared classes.
func runQuery(ctx context.Context, args []string) int {
	prog, code := loadProgram(ctx, args)
	if code != 0 {
		return code
	}

	var pkg *types.Package
	if *pkgName != "" {
		if pkg = prog.Package(*pkgName); pkg == nil && *pkgName != types.LangName {
			fmt.Fprintf(os.Stderr, "error: unknown package %s\n", *pkgName)
			return 1
		}
	} else if pkgs := prog.Packages(); len(pkgs) > 0 {
		pkg = pkgs[len(pkgs)-1]
	}

	start := time.Now()
	defer tracef("resolve", start)

	switch {
	case *resolveExpr != "":
		var scope *resolve.ResolvedType
		if *contextExpr != "" {
			c, err := resolve.Parse(pkg, *contextExpr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: -context: %v\n", err)
				return 1
			}
			scope = c
		}
		t, err := resolve.ParseIn(pkg, scope, *resolveExpr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return report(os.Stdout, t)

	case *capture != "":
		c := prog.Lookup(*capture)
		if c == nil && pkg != nil {
			c = pkg.Lookup(*capture)
		}
		if c == nil {
			fmt.Fprintf(os.Stderr, "error: undefined class %s\n", *capture)
			return 1
		}
		t, err := resolve.Capture(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Printf("captured %s\n", c)
		return report(os.Stdout, t)
	}

	if *contextExpr != "" || *supers || *members {
		fmt.Fprintln(os.Stderr, "error: -context, -supers and -members need -resolve or -capture")
		return 1
	}
	listClasses(os.Stdout, prog)
	return 0
}
