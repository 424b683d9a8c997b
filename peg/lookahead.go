package peg

import "fmt"

// And returns a non-consuming operator that succeeds if op matches at
// the current position, without advancing the cursor either way.
func And(op Operator) Operator {
	switch op := op.(type) {
	case andOp:
		return op
	case notOp:
		return op
	default:
		return andOp{child: op}
	}
}

type andOp struct{ child Operator }

func (a andOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	_, err := a.child.exec(st)
	st.seek(start)
	if err != nil {
		return nil, err
	}
	return adapt(st, Lexeme{Text: ""}), nil
}

func (a andOp) children() []Operator { return []Operator{a.child} }

func (a andOp) Format(w fmt.State, _ rune) {
	writeByte(w, '&')
	formatChild(w, a, a.child)
}

// Not returns a non-consuming operator that succeeds only if op fails to
// match at the current position.
func Not(op Operator) Operator {
	switch op := op.(type) {
	case andOp:
		return notOp(op)
	case notOp:
		return andOp(op)
	default:
		return notOp{child: op}
	}
}

type notOp struct{ child Operator }

func (n notOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	_, err := n.child.exec(st)
	st.seek(start)
	if err == nil {
		return nil, &failure{
			reason: ByExpectation{Expected: ExpectedEndOfInput{}, Sample: st.sample()},
			offset: start,
		}
	}
	return adapt(st, Lexeme{Text: ""}), nil
}

func (n notOp) children() []Operator { return []Operator{n.child} }

func (n notOp) Format(w fmt.State, _ rune) {
	writeByte(w, '!')
	formatChild(w, n, n.child)
}
