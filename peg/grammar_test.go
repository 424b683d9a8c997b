package peg_test

import (
	"fmt"
	"testing"

	"github.com/go-peg/peg"
)

func TestGrammarDuplicateRule(t *testing.T) {
	_, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "a", Expr: peg.Match("x")},
		{Name: "a", Expr: peg.Match("y")},
	}, "a")
	if err == nil {
		t.Fatal("expected an error for a duplicate rule name")
	}
}

func TestGrammarValidateCatchesUndeclaredCall(t *testing.T) {
	g, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "root", Expr: peg.Sequence(peg.Call("missing"), peg.Match("x"))},
	}, "root")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err == nil {
		t.Fatal("expected Validate to report the undeclared rule \"missing\"")
	}
}

func TestGrammarValidateClean(t *testing.T) {
	g, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "root", Expr: peg.Call("leaf")},
		{Name: "leaf", Expr: peg.Match("x")},
	}, "root")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGrammarFormat(t *testing.T) {
	g, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "root", Expr: peg.Sequence(peg.Match("a"), peg.Choice(peg.Match("b"), peg.Match("c")))},
	}, "root")
	if err != nil {
		t.Fatal(err)
	}
	want := `root <- "a" ("b" / "c")`
	if got := fmt.Sprint(g); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
