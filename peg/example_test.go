package peg_test

import (
	"fmt"
	"strconv"

	"github.com/go-peg/peg"
)

// ExampleParser_calculator builds a tiny arithmetic grammar and
// evaluates it, the same shape of demonstration as the teacher's own
// ExampleParser_calculator, but driven through Action callbacks instead
// of a separate Process-binding step.
func ExampleParser_calculator() {
	digits := peg.Regex(`[0-9]+`, "a number")

	integer := peg.Action(digits, func(ctx *peg.ActionContext) peg.Outcome {
		n, err := strconv.ParseInt(ctx.Value.(peg.Lexeme).Text, 10, 64)
		if err != nil {
			return peg.Fail()
		}
		return peg.Pass(n)
	})

	addOrSub := func(op string, apply func(lhs, rhs int64) int64) peg.Operator {
		return peg.Action(
			peg.Sequence(peg.Match(op), peg.Call("term")),
			func(ctx *peg.ActionContext) peg.Outcome {
				rhs := ctx.Value.(peg.Children).Items[1].(int64)
				return peg.Pass(func(lhs int64) int64 { return apply(lhs, rhs) })
			},
		)
	}

	expression := peg.Action(
		peg.Sequence(peg.Call("term"), peg.Any(peg.Choice(addOrSub("+", func(l, r int64) int64 { return l + r }), addOrSub("-", func(l, r int64) int64 { return l - r })))),
		func(ctx *peg.ActionContext) peg.Outcome {
			items := ctx.Value.(peg.Children).Items
			v := items[0].(int64)
			for _, step := range items[1].(peg.Children).Items {
				v = step.(func(int64) int64)(v)
			}
			return peg.Pass(v)
		},
	)

	g, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "expression", Expr: expression},
		{Name: "term", Expr: integer},
	}, "expression")
	if err != nil {
		fmt.Println("grammar error:", err)
		return
	}
	// This adapter additionally unwraps InRule, so a Call("term") reads
	// back as the plain int64 "term" itself produced, instead of an
	// InRule{Rule: "term", ...} wrapper — a realistic custom Adapter, as
	// opposed to DefaultAdapter which leaves InRule untouched.
	unwrapRules := func(t peg.Token) interface{} {
		switch t := t.(type) {
		case peg.Custom:
			return t.Value
		case peg.InRule:
			return t.Inner
		default:
			return t
		}
	}
	p := peg.NewParser(g, unwrapRules)

	for _, input := range []string{"9", "8+15", "20-5-5"} {
		v, err := p.Parse(input)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		fmt.Printf("%s = %v\n", input, v)
	}
	// Output:
	// 9 = 9
	// 8+15 = 23
	// 20-5-5 = 10
}

// ExampleLabel demonstrates a label value surviving into an Action bound
// later in the same Sequence.
func ExampleLabel() {
	g, err := peg.NewGrammar([]peg.RuleDef{
		{Name: "greeting", Expr: peg.Sequence(
			peg.Label("name", peg.Regex(`[A-Za-z]+`)),
			peg.Match("!"),
			peg.Action(peg.Maybe(peg.Match("")), func(ctx *peg.ActionContext) peg.Outcome {
				return peg.Pass(fmt.Sprintf("hello, %s", ctx.Labels["name"].(peg.Lexeme).Text))
			}),
		)},
	}, "greeting")
	if err != nil {
		fmt.Println(err)
		return
	}
	p := peg.NewParser(g, nil)
	v, err := p.Parse("Ada!")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.(peg.Children).Items[2])
	// Output:
	// hello, Ada
}
