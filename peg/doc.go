// Package peg provides a recursive descent parsing-expression-grammar
// engine.
//
// A grammar is a set of named rules, each bound to a tree of operators
// built from the constructors in this package (Match, Regex, Sequence,
// Choice, and so on). Build a Grammar with NewGrammar, then drive it
// against an input string with a Parser built by NewParser.
//
// Every operator's successful match produces a Token (see token.go),
// which is projected through a caller-supplied Adapter into whatever
// result type the caller wants. A failed parse returns a *ParseError
// describing why, as a Reason plus a source Position.
package peg
