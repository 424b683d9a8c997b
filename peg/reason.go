package peg

// Reason describes why a parse failed. It is a closed variant type,
// mirroring the way the Match Token model in token.go is closed: the only
// implementations are ByExpectation, FollowingRule, FollowingNestedOperator,
// NoStartRule and ActionRejected.
type Reason interface {
	reason()
}

// ByExpectation is the base failure reason, produced directly by NextChar,
// Match, Regex, Not, PreExec and NegPreExec, by Call/CallAs when the
// target rule is not declared, and by Parse when input is left over, in
// each case because the input did not provide what was expected at the
// current position. TextOf and And pass their child's failure through
// unchanged.
type ByExpectation struct {
	Expected Expected
	Sample   Sample
}

func (ByExpectation) reason() {}

// FollowingRule wraps an inner failure with the name of the rule that was
// being evaluated through Call or CallAs when it occurred. It does not
// introduce a new sample or offset; it only annotates which rule the
// failure propagated through.
type FollowingRule struct {
	Rule  string
	Inner Reason
}

func (FollowingRule) reason() {}

// FollowingNestedOperator is produced by Choice when every alternative
// has failed. It preserves every alternative's failure reason, in order,
// rather than flattening them down to a single cause — a caller's
// pretty-printer can still report "alternative 2 expected X" even though
// the sample recorded alongside the aggregate is taken fresh at the
// Choice's own entry position, not reused from any one alternative's
// deepest failure position.
type FollowingNestedOperator struct {
	Children []Reason
	Sample   Sample
}

func (FollowingNestedOperator) reason() {}

// NoStartRule is produced by the top-level driver when the grammar's
// configured start rule name is not present in the grammar.
type NoStartRule struct{}

func (NoStartRule) reason() {}

// ActionRejected is produced by Action when the bound callback returns
// Fail. The position recorded alongside it is the position reached by
// the successful inner operator, not rewound further (see DESIGN.md for
// the Open Question this resolves).
type ActionRejected struct{}

func (ActionRejected) reason() {}

// Expected describes what the parser was looking for at a failure point.
// Closed variant: ExpectedLiteral, ExpectedAny, ExpectedRule,
// ExpectedRegex, ExpectedEndOfInput.
type Expected interface {
	expected()
}

type ExpectedLiteral struct{ Text string }

func (ExpectedLiteral) expected() {}

type ExpectedAny struct{}

func (ExpectedAny) expected() {}

type ExpectedRule struct{ Name string }

func (ExpectedRule) expected() {}

type ExpectedRegex struct {
	Pattern     string
	Description string
}

func (ExpectedRegex) expected() {}

type ExpectedEndOfInput struct{}

func (ExpectedEndOfInput) expected() {}

// Sample describes what was actually found at a failure point. Closed
// variant: GotValue, GotEndOfInput.
type Sample interface {
	sample()
}

type GotValue struct{ Value string }

func (GotValue) sample() {}

type GotEndOfInput struct{}

func (GotEndOfInput) sample() {}

// failure is the internal carrier threaded up through exec calls. It
// pairs a Reason with the absolute offset it should be reported at,
// since backtracking restores state.pos and so the position can't always
// be read back off the state once a composite operator has failed.
type failure struct {
	reason Reason
	offset int
}
