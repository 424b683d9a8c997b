package peg

import "fmt"

// Call returns an operator that invokes the grammar rule named name. Its
// failure is reported as FollowingRule{Rule: name}, wrapping whatever
// the rule's own operator tree failed with, and its success value is
// wrapped in InRule{Rule: name} before being passed through the adapter.
//
// Rule lookup happens lazily at exec time against the Parser the
// enclosing Grammar was bound to, mirroring the teacher's
// lookupExpression, except resolution is by name on every call rather
// than a pre-resolved slice index — simpler, and this engine's grammars
// are expected to be small enough that the lookup cost is immaterial.
func Call(name string) Operator { return callOp{name: name} }

type callOp struct{ name string }

func (c callOp) exec(st *state) (interface{}, *failure) {
	return execRule(st, c.name, c.name)
}

func (callOp) children() []Operator { return nil }

func (c callOp) Format(w fmt.State, _ rune) { fmt.Fprint(w, c.name) }

// CallAs returns an operator that invokes the grammar rule named target,
// but reports it under alias in FollowingRule/InRule instead of target's
// own name. This is useful when one operator tree is reused under
// several aliases within a larger grammar.
func CallAs(alias, target string) Operator { return callAsOp{alias: alias, target: target} }

type callAsOp struct{ alias, target string }

func (c callAsOp) exec(st *state) (interface{}, *failure) {
	return execRule(st, c.target, c.alias)
}

func (callAsOp) children() []Operator { return nil }

func (c callAsOp) Format(w fmt.State, _ rune) { fmt.Fprintf(w, "%s:%s", c.alias, c.target) }

func execRule(st *state, target, reportAs string) (interface{}, *failure) {
	op, ok := st.parser.grammar.rules[target]
	if !ok {
		return nil, &failure{
			reason: ByExpectation{Expected: ExpectedRule{Name: target}, Sample: st.sample()},
			offset: st.pos,
		}
	}
	st.depth++
	st.trace("enter", reportAs)
	v, err := op.exec(st)
	st.trace("exit", reportAs)
	st.depth--
	if err != nil {
		return nil, &failure{reason: FollowingRule{Rule: reportAs, Inner: err.reason}, offset: err.offset}
	}
	return adapt(st, InRule{Rule: reportAs, Inner: v}), nil
}
