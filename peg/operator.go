package peg

import (
	"fmt"
	"io"
)

// Operator is a node in a grammar's operator tree. The seventeen
// constructors in this package (NextChar, Match, Regex, TextOf, Maybe,
// Some, Any, And, Not, Sequence, Choice, Action, PreExec, NegPreExec,
// Label, Call, CallAs) are the only way to build one; Operator itself is
// a closed interface outside this package, the same technique the
// teacher's Expression type uses for its grammar nodes.
type Operator interface {
	// exec attempts to match starting at st.pos. On failure st.pos is
	// left where it was on entry, except when an Action callback rejects
	// a match, which leaves st.pos where the inner match ended. On
	// success it returns the
	// operator's Token already projected through the adapter; on failure
	// it returns a *failure describing why.
	exec(st *state) (interface{}, *failure)

	// Format renders the operator as PEG-like source text, used for
	// debugging and doc comments; grounded on the teacher's
	// Expression.Format/formatChild convention.
	fmt.Formatter

	// children returns the operator's direct sub-operators, if any. Used
	// only by the walk helper that backs Grammar.Validate.
	children() []Operator
}

func adapt(st *state, t Token) interface{} {
	if st.parser.adapt != nil {
		return st.parser.adapt(t)
	}
	return DefaultAdapter(t)
}

// formatChild mirrors the teacher's formatChild: it parenthesizes a
// sequence or choice child unless the parent is itself a choice (where
// sequences don't need parens) so that round-tripped output stays
// unambiguous.
func formatChild(w fmt.State, parent, child Operator) {
	f := "%v"
	switch child.(type) {
	case sequenceOp:
		if _, parentIsChoice := parent.(choiceOp); !parentIsChoice {
			f = "(%v)"
		}
	case choiceOp:
		f = "(%v)"
	}
	fmt.Fprintf(w, f, child)
}

func writeByte(w io.Writer, b byte) {
	var buf [1]byte
	buf[0] = b
	w.Write(buf[:])
}
