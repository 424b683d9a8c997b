package peg

import "fmt"

// Maybe returns an operator that matches zero or one occurrences of op.
// It never fails: when op does not match, Maybe succeeds without
// consuming input. Simplification rules mirror the teacher's Optional
// constructor.
func Maybe(op Operator) Operator {
	switch op := op.(type) {
	case anyOp:
		return op
	case someOp:
		return anyOp(op)
	case maybeOp:
		return op
	default:
		return maybeOp{child: op}
	}
}

type maybeOp struct{ child Operator }

func (m maybeOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	v, err := m.child.exec(st)
	if err != nil {
		st.seek(start)
		return adapt(st, Lexeme{Text: ""}), nil
	}
	return v, nil
}

func (m maybeOp) children() []Operator { return []Operator{m.child} }

func (m maybeOp) Format(w fmt.State, _ rune) {
	formatChild(w, m, m.child)
	writeByte(w, '?')
}

// Some returns an operator that matches one or more occurrences of op,
// greedily, failing only if op fails to match even once.
func Some(op Operator) Operator {
	switch op := op.(type) {
	case anyOp:
		return op
	case someOp:
		return op
	case maybeOp:
		return anyOp(op)
	default:
		return someOp{child: op}
	}
}

type someOp struct{ child Operator }

func (s someOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	v, err := s.child.exec(st)
	if err != nil {
		st.seek(start)
		return nil, err
	}
	items := []interface{}{v}
	items = consumeRest(st, s.child, items)
	return adapt(st, Children{Items: items}), nil
}

func (s someOp) children() []Operator { return []Operator{s.child} }

func (s someOp) Format(w fmt.State, _ rune) {
	formatChild(w, s, s.child)
	writeByte(w, '+')
}

// Any returns an operator that matches zero or more occurrences of op,
// greedily. It never fails.
func Any(op Operator) Operator {
	switch op := op.(type) {
	case anyOp:
		return op
	case someOp:
		return anyOp(op)
	case maybeOp:
		return anyOp(op)
	default:
		return anyOp{child: op}
	}
}

type anyOp struct{ child Operator }

func (a anyOp) exec(st *state) (interface{}, *failure) {
	items := consumeRest(st, a.child, nil)
	return adapt(st, Children{Items: items}), nil
}

func (a anyOp) children() []Operator { return []Operator{a.child} }

func (a anyOp) Format(w fmt.State, _ rune) {
	formatChild(w, a, a.child)
	writeByte(w, '*')
}

// consumeRest repeatedly scans child until it fails, accumulating
// already-adapted values, and always leaves the cursor at the position
// just before the failing attempt. Mirrors the teacher's consumeAll.
func consumeRest(st *state, child Operator, items []interface{}) []interface{} {
	for {
		pos := st.mark()
		v, err := child.exec(st)
		if err != nil {
			st.seek(pos)
			return items
		}
		if st.mark() == pos {
			// child matched without consuming; stop to avoid looping forever.
			return append(items, v)
		}
		items = append(items, v)
	}
}
