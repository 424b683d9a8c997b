package peg

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// NextChar matches any single rune, consuming it. It fails at the end of
// input, expecting "any character".
func NextChar() Operator { return nextCharOp{} }

type nextCharOp struct{}

func (nextCharOp) exec(st *state) (interface{}, *failure) {
	if st.atEOF() {
		return nil, &failure{
			reason: ByExpectation{Expected: ExpectedAny{}, Sample: GotEndOfInput{}},
			offset: st.pos,
		}
	}
	r := st.peek()
	st.pos++
	return adapt(st, Lexeme{Text: string(r)}), nil
}

func (nextCharOp) children() []Operator { return nil }

func (nextCharOp) Format(w fmt.State, _ rune) { writeByte(w, '.') }

// Match returns an operator that matches exactly the literal string s,
// consuming it. It fails (without consuming) when the input at the
// current position does not start with s.
func Match(s string) Operator { return literalOp{text: s} }

type literalOp struct{ text string }

func (l literalOp) exec(st *state) (interface{}, *failure) {
	runes := []rune(l.text)
	if st.pos+len(runes) > len(st.input) {
		return nil, l.fail(st)
	}
	for i, r := range runes {
		if st.input[st.pos+i] != r {
			return nil, l.fail(st)
		}
	}
	st.pos += len(runes)
	return adapt(st, Lexeme{Text: l.text}), nil
}

func (l literalOp) fail(st *state) *failure {
	return &failure{
		reason: ByExpectation{Expected: ExpectedLiteral{Text: l.text}, Sample: st.sample()},
		offset: st.pos,
	}
}

func (literalOp) children() []Operator { return nil }

func (l literalOp) Format(w fmt.State, _ rune) { fmt.Fprintf(w, "%q", l.text) }

// Regex returns an operator that matches the longest prefix of the
// remaining input satisfying the RE2 regular expression pattern,
// consuming it. description, if given, is used in failure messages in
// place of the raw pattern text. Regex panics if pattern does not
// compile, the same convention the teacher's Literal/mustPattern use for
// grammar-construction-time errors.
func Regex(pattern string, description ...string) Operator {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		panic(fmt.Errorf("peg: invalid regex %q: %w", pattern, err))
	}
	re.Longest()
	desc := pattern
	if len(description) > 0 {
		desc = description[0]
	}
	return regexOp{pattern: pattern, description: desc, compiled: re}
}

type regexOp struct {
	pattern     string
	description string
	compiled    *regexp.Regexp
}

func (r regexOp) exec(st *state) (interface{}, *failure) {
	rest := string(st.input[st.pos:])
	loc := r.compiled.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return nil, &failure{
			reason: ByExpectation{
				Expected: ExpectedRegex{Pattern: r.pattern, Description: r.description},
				Sample:   st.sample(),
			},
			offset: st.pos,
		}
	}
	matched := rest[:loc[1]]
	st.pos += utf8.RuneCountInString(matched)
	return adapt(st, Lexeme{Text: matched}), nil
}

func (regexOp) children() []Operator { return nil }

func (r regexOp) Format(w fmt.State, _ rune) { fmt.Fprintf(w, "'%s'", r.pattern) }
