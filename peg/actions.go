package peg

import "fmt"

// Outcome is the result a callback bound to Action returns: either Pass
// with a replacement value, or Fail to make the whole Action fail.
type Outcome struct {
	ok    bool
	value interface{}
}

// Pass accepts the match, replacing its value with v.
func Pass(v interface{}) Outcome { return Outcome{ok: true, value: v} }

// Fail rejects the match that Action's inner operator just made.
func Fail() Outcome { return Outcome{ok: false} }

// ActionContext is passed to the callback bound to Action, PreExec and
// NegPreExec.
type ActionContext struct {
	// Value is the already-adapted value the inner operator produced.
	// It is the zero interface{} for PreExec/NegPreExec, which have no
	// inner operator.
	Value interface{}
	// Labels exposes every value recorded by Label so far in this parse.
	Labels map[string]interface{}
	// Position is the current absolute rune offset.
	Position int
}

// ActionFunc is the callback type bound to Action.
type ActionFunc func(ctx *ActionContext) Outcome

// Action returns an operator that runs op and, on success, passes its
// value to f. If f returns Pass, the Action succeeds with the replacement
// value; if f returns Fail, the Action fails with ActionRejected at the
// position op's match reached (not rewound further — see DESIGN.md for
// the Open Question this resolves).
func Action(op Operator, f ActionFunc) Operator { return actionOp{child: op, f: f} }

type actionOp struct {
	child Operator
	f     ActionFunc
}

func (a actionOp) exec(st *state) (interface{}, *failure) {
	v, err := a.child.exec(st)
	if err != nil {
		return nil, err
	}
	outcome := a.f(&ActionContext{Value: v, Labels: st.labels, Position: st.pos})
	if !outcome.ok {
		return nil, &failure{reason: ActionRejected{}, offset: st.pos}
	}
	return adapt(st, Custom{Value: outcome.value}), nil
}

func (a actionOp) children() []Operator { return []Operator{a.child} }

func (a actionOp) Format(w fmt.State, _ rune) {
	formatChild(w, a, a.child)
	fmt.Fprint(w, " ->")
}

// PredicateFunc is the callback type bound to PreExec and NegPreExec. It
// receives the state accumulated so far (position, labels) with no inner
// match to inspect, and decides whether the parse may continue.
type PredicateFunc func(ctx *ActionContext) bool

// PreExec returns a non-consuming operator that succeeds, without
// consuming input, exactly when f returns true.
func PreExec(f PredicateFunc) Operator { return preExecOp{f: f} }

type preExecOp struct{ f PredicateFunc }

func (p preExecOp) exec(st *state) (interface{}, *failure) {
	ok := p.f(&ActionContext{Labels: st.labels, Position: st.pos})
	if !ok {
		return nil, &failure{
			reason: ByExpectation{Expected: ExpectedEndOfInput{}, Sample: st.sample()},
			offset: st.pos,
		}
	}
	return adapt(st, Lexeme{Text: ""}), nil
}

func (preExecOp) children() []Operator { return nil }

func (preExecOp) Format(w fmt.State, _ rune) { fmt.Fprint(w, "&{...}") }

// NegPreExec returns a non-consuming operator that succeeds, without
// consuming input, exactly when f returns false.
func NegPreExec(f PredicateFunc) Operator { return negPreExecOp{f: f} }

type negPreExecOp struct{ f PredicateFunc }

func (n negPreExecOp) exec(st *state) (interface{}, *failure) {
	ok := n.f(&ActionContext{Labels: st.labels, Position: st.pos})
	if ok {
		return nil, &failure{
			reason: ByExpectation{Expected: ExpectedEndOfInput{}, Sample: st.sample()},
			offset: st.pos,
		}
	}
	return adapt(st, Lexeme{Text: ""}), nil
}

func (negPreExecOp) children() []Operator { return nil }

func (negPreExecOp) Format(w fmt.State, _ rune) { fmt.Fprint(w, "!{...}") }
