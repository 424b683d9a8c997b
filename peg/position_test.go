package peg

import "testing"

func TestResolvePosition(t *testing.T) {
	for _, test := range []struct {
		name   string
		input  string
		offset int
		want   Position
	}{
		{name: "start", input: "abc", offset: 0, want: Position{Line: 0, Column: 0}},
		{name: "mid line", input: "abc", offset: 2, want: Position{Line: 0, Column: 2}},
		{name: "after newline", input: "ab\ncd", offset: 3, want: Position{Line: 1, Column: 0}},
		{name: "on newline itself", input: "ab\ncd", offset: 2, want: Position{Line: 0, Column: 2}},
		{name: "second line mid", input: "ab\ncde", offset: 5, want: Position{Line: 1, Column: 2}},
		{name: "multiple newlines", input: "a\n\n\nb", offset: 4, want: Position{Line: 3, Column: 0}},
		{name: "past end clamps", input: "abc", offset: 99, want: Position{Line: 0, Column: 3}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := resolvePosition([]rune(test.input), test.offset)
			if got != test.want {
				t.Errorf("resolvePosition(%q, %d) = %+v, want %+v", test.input, test.offset, got, test.want)
			}
		})
	}
}

func TestSampleAt(t *testing.T) {
	input := []rune("hi")
	if s := sampleAt(input, 0); s != (GotValue{Value: "h"}) {
		t.Errorf("sampleAt(0) = %#v, want GotValue{h}", s)
	}
	if s := sampleAt(input, 2); s != (GotEndOfInput{}) {
		t.Errorf("sampleAt(len) = %#v, want GotEndOfInput{}", s)
	}
}
