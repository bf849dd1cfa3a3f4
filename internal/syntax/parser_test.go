package syntax

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func parseFile(t *testing.T, src string) *File {
	t.Helper()
	var errs []string
	errh := func(pos Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	f := NewParser("test.tg", strings.NewReader(src), errh).Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors:\n%s", strings.Join(errs, "\n"))
	}
	return f
}

func parseFileWithErrors(t *testing.T, src string) (*File, []string) {
	t.Helper()
	var errs []string
	errh := func(pos Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	f := NewParser("test.tg", strings.NewReader(src), errh).Parse()
	return f, errs
}

func parseType(t *testing.T, src string) Expr {
	t.Helper()
	p := NewParser("", strings.NewReader(src), nil)
	x := p.ParseTypeExpr()
	if err := p.FirstError(); err != nil {
		t.Fatalf("ParseTypeExpr(%q): %v", src, err)
	}
	return x
}

func TestParsePackageAndImports(t *testing.T) {
	f := parseFile(t, "package demo;\nimport util;\nimport base;\n")
	if f.PkgName.Value != "demo" {
		t.Errorf("PkgName = %q, want %q", f.PkgName.Value, "demo")
	}
	if len(f.Imports) != 2 {
		t.Fatalf("len(Imports) = %d, want 2", len(f.Imports))
	}
	if f.Imports[0].Path.Value != "util" || f.Imports[1].Path.Value != "base" {
		t.Errorf("Imports = %s, %s", f.Imports[0].Path.Value, f.Imports[1].Path.Value)
	}
}

func TestParseClassDecl(t *testing.T) {
	src := `package demo;

// a generic base
class Base<K, V> extends Object implements Comparable<Base<K, V>>, Iterable<V> {
	K key;
	V[] values;
	Map<K, List<V>> index;
	V get(K key, int hint) throws NotFound, java.Failure;
	void clear();
}

interface Shape extends Iterable<Point> {
}
`
	f := parseFile(t, src)
	if len(f.Decls) != 2 {
		t.Fatalf("len(Decls) = %d, want 2", len(f.Decls))
	}

	base := f.Decls[0].(*ClassDecl)
	if base.Interface {
		t.Error("Base parsed as interface")
	}
	if base.Name.Value != "Base" {
		t.Errorf("Name = %q", base.Name.Value)
	}
	if len(base.TypeParams) != 2 || base.TypeParams[0].Value != "K" || base.TypeParams[1].Value != "V" {
		t.Errorf("TypeParams = %v", base.TypeParams)
	}
	if got := exprStrings(base.Extends); len(got) != 1 || got[0] != "Object" {
		t.Errorf("Extends = %v", got)
	}
	wantImpl := []string{"Comparable<Base<K, V>>", "Iterable<V>"}
	gotImpl := exprStrings(base.Implements)
	if strings.Join(gotImpl, "|") != strings.Join(wantImpl, "|") {
		t.Errorf("Implements = %v, want %v", gotImpl, wantImpl)
	}
	if len(base.Members) != 5 {
		t.Fatalf("len(Members) = %d, want 5", len(base.Members))
	}

	fieldTypes := []string{"K", "V[]", "Map<K, List<V>>"}
	for i, want := range fieldTypes {
		fd, ok := base.Members[i].(*FieldDecl)
		if !ok {
			t.Fatalf("member %d is %T, want *FieldDecl", i, base.Members[i])
		}
		if got := ExprString(fd.Type); got != want {
			t.Errorf("field %s type = %q, want %q", fd.Name.Value, got, want)
		}
	}

	get := base.Members[3].(*MethodDecl)
	if get.MemberName().Value != "get" || ExprString(get.Result) != "V" {
		t.Errorf("method = %s %s", ExprString(get.Result), get.Name.Value)
	}
	if len(get.Params) != 2 || ExprString(get.Params[1].Type) != "int" || get.Params[1].Name.Value != "hint" {
		t.Errorf("params = %+v", get.Params)
	}
	if got := exprStrings(get.Throws); strings.Join(got, ",") != "NotFound,java.Failure" {
		t.Errorf("throws = %v", got)
	}

	clear := base.Members[4].(*MethodDecl)
	if ExprString(clear.Result) != "void" || len(clear.Params) != 0 {
		t.Errorf("clear = %s(%d params)", ExprString(clear.Result), len(clear.Params))
	}

	shape := f.Decls[1].(*ClassDecl)
	if !shape.Interface || len(shape.Members) != 0 {
		t.Errorf("Shape: interface=%v members=%d", shape.Interface, len(shape.Members))
	}
}

func TestParseTypeExpr(t *testing.T) {
	tests := []string{
		"String",
		"List<String>",
		"Map<String, List<Integer>>",
		"T[]",
		"int[][]",
		"List<String>[]",
		"util.Box<util.Box<T>[]>",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			x := parseType(t, src)
			if got := ExprString(x); got != src {
				t.Errorf("ExprString = %q, want %q", got, src)
			}
		})
	}
}

func TestParseTypeExprStructure(t *testing.T) {
	x := parseType(t, "Map<K, V[]>[]")
	arr, ok := x.(*ArrayType)
	if !ok {
		t.Fatalf("got %T, want *ArrayType", x)
	}
	g, ok := arr.Elem.(*GenericType)
	if !ok {
		t.Fatalf("elem is %T, want *GenericType", arr.Elem)
	}
	if len(g.Args) != 2 {
		t.Fatalf("len(Args) = %d", len(g.Args))
	}
	if _, ok := g.Args[1].(*ArrayType); !ok {
		t.Errorf("second arg is %T, want *ArrayType", g.Args[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"missing_package", "class A {}", "expected package"},
		{"missing_semi", "package p; class A { int x }", "expected ;"},
		{"bad_decl", "package p; int x;", "expected class or interface declaration"},
		{"empty_args", "package p; class A { List<> x; }", "empty type argument list"},
		{"unclosed_args", "package p; class A { List<String x; }", "expected >"},
		{"nested_class", "package p; class A { class B {} }", "nested class declarations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseFileWithErrors(t, tt.src)
			if len(errs) == 0 {
				t.Fatal("expected errors")
			}
			if !strings.Contains(errs[0], tt.wantErr) {
				t.Errorf("first error = %q, want substring %q", errs[0], tt.wantErr)
			}
		})
	}
}

func TestParseTypeExprTrailing(t *testing.T) {
	p := NewParser("", strings.NewReader("List<String> x"), nil)
	p.ParseTypeExpr()
	if p.Errors() == 0 {
		t.Fatal("expected trailing-token error")
	}
	se, ok := p.FirstError().(*SyntaxError)
	if !ok || !strings.Contains(se.Msg, "after type expression") {
		t.Errorf("FirstError = %v", p.FirstError())
	}
}

func TestParseErrorLimit(t *testing.T) {
	src := "package p;" + strings.Repeat(" x", 40)
	_, errs := parseFileWithErrors(t, src)
	if len(errs) > maxErrors+1 {
		t.Errorf("got %d errors, want at most %d", len(errs), maxErrors+1)
	}
}

func TestFprint(t *testing.T) {
	f := parseFile(t, "package p;\nclass Box<T> extends Object {\n\tT value;\n\tT get();\n}\n")
	var buf bytes.Buffer
	Fprint(&buf, f)
	out := buf.String()
	for _, want := range []string{
		"Package: p",
		"ClassDecl test.tg:2:1",
		"TypeParams: T",
		"Extends:",
		"FieldDecl test.tg:3:2 value T",
		"MethodDecl test.tg:4:2 get",
		"Result: T",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFprintJSON(t *testing.T) {
	f := parseFile(t, "package p;\ninterface Src<E> { E next() throws Done; }\n")
	var buf bytes.Buffer
	if err := FprintJSON(&buf, f); err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	decls := got["decls"].([]interface{})
	cls := decls[0].(map[string]interface{})
	if cls["name"] != "Src" || cls["interface"] != true {
		t.Errorf("class = %v", cls)
	}
	m := cls["members"].([]interface{})[0].(map[string]interface{})
	if m["result"] != "E" || m["throws"].([]interface{})[0] != "Done" {
		t.Errorf("method = %v", m)
	}
}

func TestWalk(t *testing.T) {
	f := parseFile(t, "package p;\nclass A<T> extends B<List<T>> { Map<T, C> m; }\n")
	var names []string
	Walk(f, func(n Node) bool {
		if nm, ok := n.(*Name); ok {
			names = append(names, nm.Value)
		}
		return true
	})
	want := "p A T B List T Map T C m"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("names = %q, want %q", got, want)
	}
}
