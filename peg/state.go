package peg

import "go.uber.org/zap"

// state is passed into every operator's exec call. It holds the whole
// input as a rune slice (this engine requires the entire input up front,
// per its synchronous, non-streaming resource model) plus the mutable
// cursor and label map for one Parse call.
type state struct {
	input  []rune
	pos    int
	parser *Parser

	// labels is shared, not copied, across backtracking: label values set
	// by Label survive a later operator backtracking past the position
	// they were set at. This is resolved Open-Question policy (a); see
	// DESIGN.md.
	labels map[string]interface{}

	depth int
}

func newState(p *Parser, input string) *state {
	return &state{
		input:  []rune(input),
		pos:    0,
		parser: p,
		labels: make(map[string]interface{}),
	}
}

// mark returns the current cursor, to be restored later with seek.
func (s *state) mark() int { return s.pos }

func (s *state) seek(pos int) { s.pos = pos }

func (s *state) atEOF() bool { return s.pos >= len(s.input) }

func (s *state) peek() rune { return s.input[s.pos] }

func (s *state) sample() Sample { return sampleAt(s.input, s.pos) }

func (s *state) trace(event, name string) {
	if s.parser.log == nil {
		return
	}
	s.parser.log.Debug(event,
		zap.String("rule", name),
		zap.Int("offset", s.pos),
		zap.Int("depth", s.depth))
}
