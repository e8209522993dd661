package stylesheet

import (
	"reflect"
	"testing"
)

func TestParseRulesAndImports(t *testing.T) {
	src := `@import "dark.css";
@import url("{UserAppData}/mine.css");
.Graph { color: #111111 }
.Window.HighContrast { color: #222222; }
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	wantImports := []Import{{Reference: "dark.css"}, {Reference: "{UserAppData}/mine.css"}}
	if !reflect.DeepEqual(doc.Imports, wantImports) {
		t.Fatalf("Imports = %#v, want %#v", doc.Imports, wantImports)
	}

	if len(doc.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(doc.Rules))
	}
	r := doc.Rules[1]
	if !reflect.DeepEqual(r.Classes, []string{"Window", "HighContrast"}) {
		t.Fatalf("Classes = %v, want [Window HighContrast]", r.Classes)
	}
	if len(r.Declarations) != 1 || r.Declarations[0].Property != "color" || r.Declarations[0].Value != "#222222" {
		t.Fatalf("Declarations = %#v", r.Declarations)
	}
	if r.Text == "" {
		t.Fatal("expected rule text for diagnostics")
	}
}

func TestParseKeepsImportsAfterRules(t *testing.T) {
	doc, err := Parse(".Graph { color: #111111 }\n@import \"late\";\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(doc.Imports) != 1 || doc.Imports[0].Reference != "late" {
		t.Fatalf("Imports = %#v, want [late]", doc.Imports)
	}
	if len(doc.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(doc.Rules))
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("} .Graph { color: #111111 }"); err == nil {
		t.Fatal("expected parser error for stray }")
	}
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{".Graph", []string{"Graph"}},
		{".Graph.a.b", []string{"Graph", "a", "b"}},
		{" .Graph ", []string{"Graph"}},
		{"Graph", nil},
		{".Graph .a", nil},
		{".Graph > .a", nil},
		{"#id", nil},
		{".Graph, .Tag", nil},
		{".", nil},
		{".Graph..a", nil},
	}
	for _, tt := range tests {
		if got := ClassNames(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ClassNames(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImportReference(t *testing.T) {
	tests := map[string]string{
		`"dark.css"`:          "dark.css",
		`'dark'`:              "dark",
		`url(dark.css)`:       "dark.css",
		`url("my theme.css")`: "my theme.css",
		`"my theme.css"`:      "my theme.css",
		`dark screen`:         "dark",
	}
	for in, want := range tests {
		if got := importReference(in); got != want {
			t.Fatalf("importReference(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseNestedAtRuleHasNoClasses(t *testing.T) {
	doc, err := Parse("@media print { .Graph { color: #111111 } }")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(doc.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(doc.Rules))
	}
	if doc.Rules[0].Classes != nil {
		t.Fatalf("Classes = %v, want nil for @media", doc.Rules[0].Classes)
	}
}

func TestParseStripsComments(t *testing.T) {
	src := `/* header */
@import "dark.css" /* base */;
.Graph /* note */ { color: #111111 }
.Window.HighContrast { /* why */ color: #222222 /* note */; }
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(doc.Imports) != 1 || doc.Imports[0].Reference != "dark.css" {
		t.Fatalf("Imports = %#v, want [dark.css]", doc.Imports)
	}
	if len(doc.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(doc.Rules))
	}

	if got := doc.Rules[0].Classes; !reflect.DeepEqual(got, []string{"Graph"}) {
		t.Fatalf("Classes = %v, want [Graph]", got)
	}
	if got := doc.Rules[0].Selector; got != ".Graph" {
		t.Fatalf("Selector = %q, want .Graph", got)
	}
	want := []Declaration{{Property: "color", Value: "#222222"}}
	if got := doc.Rules[1].Declarations; !reflect.DeepEqual(got, want) {
		t.Fatalf("Declarations = %#v, want %#v", got, want)
	}
}

func TestParseRejectsUnterminatedImport(t *testing.T) {
	if _, err := Parse("@import \"dark.css\"\n.Graph { color: #111111 }\n"); err == nil {
		t.Fatal("expected error for @import without ';'")
	}
	if _, err := Parse("@import \"dark.css\"\n.Graph {}\n"); err == nil {
		t.Fatal("expected error for @import without ';' before an empty rule")
	}
}

func TestStripComments(t *testing.T) {
	tests := map[string]string{
		"#111111":                "#111111",
		"#111111 /* note */":     "#111111",
		"/* a */ .Graph /* b */": ".Graph",
		"/* multi\nline */color": "color",
	}
	for in, want := range tests {
		if got := stripComments(in); got != want {
			t.Fatalf("stripComments(%q) = %q, want %q", in, got, want)
		}
	}
}
