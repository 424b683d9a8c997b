package peg

import "fmt"

// TextOf returns an operator that runs op for its consuming side effect
// but, on success, produces the exact substring of input that op
// consumed rather than op's own token shape.
func TextOf(op Operator) Operator { return textOfOp{child: op} }

type textOfOp struct{ child Operator }

func (t textOfOp) exec(st *state) (interface{}, *failure) {
	start := st.mark()
	_, err := t.child.exec(st)
	if err != nil {
		return nil, err
	}
	text := string(st.input[start:st.mark()])
	return adapt(st, Lexeme{Text: text}), nil
}

func (t textOfOp) children() []Operator { return []Operator{t.child} }

func (t textOfOp) Format(w fmt.State, _ rune) {
	writeByte(w, '$')
	formatChild(w, t, t.child)
}

// Label returns an operator that runs op and, on success, records its
// already-adapted value under name in the parse's shared label map
// before passing the value through unchanged. Label values are visible
// to PreExec/NegPreExec/Action callbacks for the rest of the parse,
// including after backtracking past the Label node itself (Open
// Question policy (a); see DESIGN.md).
func Label(name string, op Operator) Operator { return labelOp{name: name, child: op} }

type labelOp struct {
	name  string
	child Operator
}

func (l labelOp) exec(st *state) (interface{}, *failure) {
	v, err := l.child.exec(st)
	if err != nil {
		return nil, err
	}
	st.labels[l.name] = v
	return v, nil
}

func (l labelOp) children() []Operator { return []Operator{l.child} }

func (l labelOp) Format(w fmt.State, _ rune) {
	fmt.Fprintf(w, "%s:", l.name)
	formatChild(w, l, l.child)
}
