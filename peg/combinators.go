package peg

import "fmt"

// Sequence returns an operator that matches each of the given operators
// in order, failing as soon as one of them fails. Nested Sequence
// operators are flattened, mirroring the teacher's Sequence constructor
// in expressions.go.
func Sequence(ops ...Operator) Operator {
	list := make([]Operator, 0, len(ops))
	for _, op := range ops {
		if op == nil {
			continue
		}
		if nested, ok := op.(sequenceOp); ok {
			list = append(list, nested...)
		} else {
			list = append(list, op)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	default:
		return sequenceOp(list)
	}
}

type sequenceOp []Operator

func (s sequenceOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	items := make([]interface{}, 0, len(s))
	for _, op := range s {
		v, err := op.exec(st)
		if err != nil {
			st.seek(start)
			return nil, err
		}
		items = append(items, v)
	}
	return adapt(st, Children{Items: items}), nil
}

func (s sequenceOp) children() []Operator { return s }

func (s sequenceOp) Format(w fmt.State, _ rune) {
	for i, child := range s {
		if i > 0 {
			writeByte(w, ' ')
		}
		formatChild(w, s, child)
	}
}

// Choice returns an operator that tries each of the given operators in
// order and accepts the first one that matches, restoring the cursor
// between attempts. If every alternative fails, the Choice itself fails
// with FollowingNestedOperator, sampled at the Choice's own entry
// position rather than any one alternative's deepest failure position.
// Nested Choice operators are flattened, mirroring the teacher's Choice
// constructor.
func Choice(ops ...Operator) Operator {
	list := make([]Operator, 0, len(ops))
	for _, op := range ops {
		if op == nil {
			continue
		}
		if nested, ok := op.(choiceOp); ok {
			list = append(list, nested...)
		} else {
			list = append(list, op)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	default:
		return choiceOp(list)
	}
}

type choiceOp []Operator

func (c choiceOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	reasons := make([]Reason, 0, len(c))
	for _, op := range c {
		st.seek(start)
		v, err := op.exec(st)
		if err == nil {
			return v, nil
		}
		reasons = append(reasons, err.reason)
	}
	st.seek(start)
	return nil, &failure{
		reason: FollowingNestedOperator{Children: reasons, Sample: st.sample()},
		offset: start,
	}
}

func (c choiceOp) children() []Operator { return c }

func (c choiceOp) Format(w fmt.State, _ rune) {
	for i, child := range c {
		if i > 0 {
			fmt.Fprint(w, " / ")
		}
		formatChild(w, c, child)
	}
}
