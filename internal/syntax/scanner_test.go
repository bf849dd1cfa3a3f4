package syntax

import (
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) ([]Token, []string, []string) {
	t.Helper()
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, NewPos("", line, col).String()+": "+msg)
	}
	s := NewScanner("test.tg", strings.NewReader(src), errh)
	var toks []Token
	var lits []string
	for {
		s.Next()
		toks = append(toks, s.Token())
		lits = append(lits, s.Literal())
		if s.Token() == _EOF {
			break
		}
	}
	return toks, lits, errs
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{"ident", "foo", []Token{_Name, _EOF}, []string{"foo", ""}},
		{"ident_dollar", "Outer$Inner", []Token{_Name, _EOF}, []string{"Outer$Inner", ""}},
		{"ident_digits", "T1", []Token{_Name, _EOF}, []string{"T1", ""}},
		{"predecl_int", "int", []Token{_Name, _EOF}, []string{"int", ""}},
		{"predecl_void", "void", []Token{_Name, _EOF}, []string{"void", ""}},
		{"kw_class", "class", []Token{_Class, _EOF}, []string{"class", ""}},
		{"kw_interface", "interface", []Token{_Interface, _EOF}, []string{"interface", ""}},
		{"kw_extends", "extends", []Token{_Extends, _EOF}, []string{"extends", ""}},
		{"kw_implements", "implements", []Token{_Implements, _EOF}, []string{"implements", ""}},
		{"kw_throws", "throws", []Token{_Throws, _EOF}, []string{"throws", ""}},
		{"generic", "List<String>", []Token{_Name, _Lss, _Name, _Gtr, _EOF}, []string{"List", "<", "String", ">", ""}},
		{"nested_close", "A<B<C>>", []Token{_Name, _Lss, _Name, _Lss, _Name, _Gtr, _Gtr, _EOF}, []string{"A", "<", "B", "<", "C", ">", ">", ""}},
		{"array", "T[]", []Token{_Name, _Lbrack, _Rbrack, _EOF}, []string{"T", "[", "]", ""}},
		{"qualified", "util.List", []Token{_Name, _Dot, _Name, _EOF}, []string{"util", ".", "List", ""}},
		{"delims", "(){},;", []Token{_Lparen, _Rparen, _Lbrace, _Rbrace, _Comma, _Semi, _EOF}, []string{"(", ")", "{", "}", ",", ";", ""}},
		{"comment", "a // trailing\nb", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},
		{"newlines", "a\n\n\tb", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, lits, errs := scanAll(t, tt.src)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(toks) != len(tt.tokens) {
				t.Fatalf("got %d tokens %v, want %d %v", len(toks), toks, len(tt.tokens), tt.tokens)
			}
			for i := range toks {
				if toks[i] != tt.tokens[i] {
					t.Errorf("token[%d] = %v, want %v", i, toks[i], tt.tokens[i])
				}
				if lits[i] != tt.lits[i] {
					t.Errorf("lit[%d] = %q, want %q", i, lits[i], tt.lits[i])
				}
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"bad_char", "a # b", "1:3: unexpected character '#'"},
		{"single_slash", "a / b", "1:3: unexpected character '/'"},
		{"bad_utf8", "a\xffb", "invalid UTF-8 encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, errs := scanAll(t, tt.src)
			if len(errs) == 0 {
				t.Fatal("expected an error")
			}
			if !strings.Contains(errs[0], tt.wantErr) {
				t.Errorf("error = %q, want substring %q", errs[0], tt.wantErr)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	s := NewScanner("pos.tg", strings.NewReader("class A\n  extends B"), nil)
	want := []string{"pos.tg:1:1", "pos.tg:1:7", "pos.tg:2:3", "pos.tg:2:11"}
	for i, w := range want {
		s.Next()
		if got := s.Pos().String(); got != w {
			t.Errorf("token %d pos = %s, want %s", i, got, w)
		}
	}
}

func TestScanSkipsByteOrderMark(t *testing.T) {
	s := NewScanner("bom.tg", strings.NewReader("\uFEFFpackage p;"), nil)
	s.Next()
	if s.Token() != _Package || s.Pos().String() != "bom.tg:1:1" {
		t.Errorf("first token = %v at %s, want package at bom.tg:1:1", s.Token(), s.Pos())
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_Lss, "<"},
		{_Gtr, ">"},
		{_Class, "class"},
		{_Throws, "throws"},
		{Token(999), "token(999)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
	if !_Package.IsKeyword() || _Name.IsKeyword() {
		t.Error("IsKeyword misclassifies tokens")
	}
}

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{NewPos("a.tg", 3, 4), "a.tg:3:4"},
		{NewPos("", 3, 4), "3:4"},
		{NoPos, "-"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("Pos.String() = %q, want %q", got, tt.want)
		}
	}
}
