package peg

import "fmt"

// RuleDef pairs a rule name with the operator tree it is bound to, the
// unit NewGrammar is built from.
type RuleDef struct {
	Name string
	Expr Operator
}

// Grammar is a compiled, named set of rules ready to drive a Parser.
// Mirrors the teacher's Grammar/Rule split, but keyed by name (this
// engine resolves Call/CallAs by name at exec time rather than by a
// pre-resolved slice index).
type Grammar struct {
	order []string
	rules map[string]Operator
	start string
}

// NewGrammar builds a Grammar from rules, with start as the name of the
// rule Parse begins from. It returns an error if two rules share a name;
// it does not require start to already be present, since an absent start
// rule is reported as a Reason (NoStartRule) from Parse rather than a Go
// construction error, matching the top-level driver's own error model.
func NewGrammar(rules []RuleDef, start string) (*Grammar, error) {
	g := &Grammar{
		order: make([]string, 0, len(rules)),
		rules: make(map[string]Operator, len(rules)),
		start: start,
	}
	for _, r := range rules {
		if _, dup := g.rules[r.Name]; dup {
			return nil, fmt.Errorf("peg: rule %q declared more than once", r.Name)
		}
		g.rules[r.Name] = r.Expr
		g.order = append(g.order, r.Name)
	}
	return g, nil
}

// Rule returns the operator bound to name, if there is one.
func (g *Grammar) Rule(name string) (Operator, bool) {
	op, ok := g.rules[name]
	return op, ok
}

// StartRule returns the name of the rule Parse begins from.
func (g *Grammar) StartRule() string { return g.start }

// SetStartRule changes the rule Parse begins from.
func (g *Grammar) SetStartRule(name string) { g.start = name }

// Validate walks every rule's operator tree and reports every Call or
// CallAs target that is not declared in this Grammar, all at once,
// rather than failing on the first one encountered at parse time.
// Supplements §4.2's lazy, one-at-a-time ExpectedRule failure with an
// eager check a grammar author can run while iterating on a rule set.
func (g *Grammar) Validate() error {
	var missing []string
	seen := map[string]bool{}
	for _, name := range g.order {
		walk(g.rules[name], func(op Operator) {
			var target string
			switch op := op.(type) {
			case callOp:
				target = op.name
			case callAsOp:
				target = op.target
			default:
				return
			}
			if _, ok := g.rules[target]; !ok && !seen[target] {
				seen[target] = true
				missing = append(missing, target)
			}
		})
	}
	if len(missing) > 0 {
		return fmt.Errorf("peg: undeclared rule(s): %v", missing)
	}
	return nil
}

// walk invokes callback for op and then recurses into its children,
// mirroring the teacher's package-level Walk helper.
func walk(op Operator, callback func(Operator)) {
	if op == nil {
		return
	}
	callback(op)
	for _, c := range op.children() {
		walk(c, callback)
	}
}

// Format pretty-prints the grammar as PEG-like source, rule names
// left-aligned, in declaration order — grounded on the teacher's
// Grammar.Format.
func (g *Grammar) Format(w fmt.State, _ rune) {
	width := 0
	for _, name := range g.order {
		if len(name) > width {
			width = len(name)
		}
	}
	for i, name := range g.order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, name)
		for pad := width - len(name); pad > 0; pad-- {
			writeByte(w, ' ')
		}
		fmt.Fprintf(w, " <- %v", g.rules[name])
	}
}
