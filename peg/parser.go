package peg

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Parser drives a Grammar against input strings. A Parser is immutable
// after construction, so one *Parser may be used from multiple
// goroutines concurrently — each Parse call allocates its own state.
type Parser struct {
	grammar *Grammar
	adapt   Adapter
	log     *zap.Logger
}

// ParserOption configures optional Parser behavior.
type ParserOption func(*Parser)

// WithLogger attaches a zap logger that receives structured debug events
// for rule entry and exit through Call/CallAs, the structured
// replacement for the teacher's fmt.Print-based Parser.Trace flag.
// Choice backtracking and the final parse outcome are not logged.
func WithLogger(log *zap.Logger) ParserOption {
	return func(p *Parser) { p.log = log }
}

// NewParser builds a Parser for g. adapt projects every successful
// match's Token into the caller's result type; a nil adapt defaults to
// DefaultAdapter.
func NewParser(g *Grammar, adapt Adapter, opts ...ParserOption) *Parser {
	if adapt == nil {
		adapt = DefaultAdapter
	}
	p := &Parser{grammar: g, adapt: adapt}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseError is returned by Parse when input does not match the grammar,
// or when the grammar's start rule is not declared. It carries the
// structured Reason the match failed with, plus the source Position it
// should be reported at.
type ParseError struct {
	Reason   Reason
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line+1, e.Position.Column+1, describeReason(e.Reason))
}

// ErrNoStartRule and ErrDismatch are sentinels usable with errors.Is
// against a *ParseError.
var (
	ErrNoStartRule = fmt.Errorf("peg: no start rule")
	ErrDismatch    = fmt.Errorf("peg: input did not match")
)

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrNoStartRule:
		_, ok := e.Reason.(NoStartRule)
		return ok
	case ErrDismatch:
		return true
	}
	return false
}

func describeReason(r Reason) string {
	switch r := r.(type) {
	case ByExpectation:
		return fmt.Sprintf("expected %s, got %s", describeExpected(r.Expected), describeSample(r.Sample))
	case FollowingRule:
		return fmt.Sprintf("in rule %q: %s", r.Rule, describeReason(r.Inner))
	case FollowingNestedOperator:
		parts := make([]string, len(r.Children))
		for i, c := range r.Children {
			parts[i] = describeReason(c)
		}
		return fmt.Sprintf("no alternative matched (%s), got %s", strings.Join(parts, "; "), describeSample(r.Sample))
	case ActionRejected:
		return "rejected by action"
	case NoStartRule:
		return "grammar has no such start rule"
	default:
		return "no match"
	}
}

func describeExpected(e Expected) string {
	switch e := e.(type) {
	case ExpectedLiteral:
		return fmt.Sprintf("%q", e.Text)
	case ExpectedAny:
		return "any character"
	case ExpectedRule:
		return fmt.Sprintf("rule %q", e.Name)
	case ExpectedRegex:
		return e.Description
	case ExpectedEndOfInput:
		return "end of input"
	default:
		return "something else"
	}
}

func describeSample(s Sample) string {
	switch s := s.(type) {
	case GotValue:
		return fmt.Sprintf("%q", s.Value)
	case GotEndOfInput:
		return "end of input"
	default:
		return "?"
	}
}

// Parse runs the grammar's start rule against the whole of input. It
// requires the rule to consume all of input: leftover, unconsumed input
// after an otherwise successful match is rewritten into an
// ExpectedEndOfInput failure at the position the match stopped, per the
// top-level driver's whole-input-consumption requirement.
func (p *Parser) Parse(input string) (interface{}, error) {
	op, ok := p.grammar.Rule(p.grammar.start)
	if !ok {
		return nil, &ParseError{Reason: NoStartRule{}}
	}
	st := newState(p, input)
	v, err := op.exec(st)
	if err != nil {
		return nil, &ParseError{
			Reason:   err.reason,
			Position: resolvePosition(st.input, err.offset),
		}
	}
	if st.pos != len(st.input) {
		return nil, &ParseError{
			Reason: ByExpectation{
				Expected: ExpectedEndOfInput{},
				Sample:   sampleAt(st.input, st.pos),
			},
			Position: resolvePosition(st.input, st.pos),
		}
	}
	return v, nil
}
