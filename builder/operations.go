// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// operations.go - semantic operations.
//
// Contract:
//   - Each operation is a fixed sequence of Add and delimiter calls; see
//     constants.go for the tokens.
//   - Arguments are inserted verbatim. Nothing is escaped: a `]`, `^` or `\`
//     inside chars keeps its class meaning, and metacharacters in text keep
//     their pattern meaning. Use regexp.QuoteMeta for literal text.
//   - Every method returns the receiver.

package builder

// Any matches exactly one character from chars: "[" chars "]".
func (e *Expression) Any(chars string) *Expression {
	return e.OpenClass().
		Add(chars).
		CloseClass()
}

// AnyOf is an alias of Any.
func (e *Expression) AnyOf(chars string) *Expression {
	return e.Any(chars)
}

// Anything captures zero or more of any character: "(.*)".
func (e *Expression) Anything() *Expression {
	return e.Add(fragmentAnything)
}

// AnythingBut matches a possibly empty run of characters not in chars:
// "(?:[^" chars "]*)".
func (e *Expression) AnythingBut(chars string) *Expression {
	return e.OpenGroup().
		OpenClass().
		Add(tokenNegate).
		Add(chars).
		CloseClass().
		Add(tokenZeroOrMore).
		CloseGroup()
}

// LineBreak matches "\n" or "\r\n": "(?:\n|(?:\r\n))".
func (e *Expression) LineBreak() *Expression {
	return e.OpenGroup().
		Add(fragmentNewline).
		Or(fragmentCRLF).
		CloseGroup()
}

// Br is an alias of LineBreak.
func (e *Expression) Br() *Expression {
	return e.LineBreak()
}

// Capture matches text and records it as a numbered submatch:
// "(" text ")".
func (e *Expression) Capture(text string) *Expression {
	return e.OpenCapturingGroup().
		Add(text).
		CloseGroup()
}

// EndOfLine appends the "$" anchor.
func (e *Expression) EndOfLine() *Expression {
	return e.Add(tokenEndOfLine)
}

// Find matches text inside a non-capturing group: "(?:" text ")".
// The group keeps later quantifiers and alternations from binding into text.
func (e *Expression) Find(text string) *Expression {
	return e.OpenGroup().
		Add(text).
		CloseGroup()
}

// Then is an alias of Find that reads better mid-chain.
func (e *Expression) Then(text string) *Expression {
	return e.Find(text)
}

// Maybe matches zero or one occurrence of text: "(?:" text ")?".
func (e *Expression) Maybe(text string) *Expression {
	return e.Find(text).
		Add(tokenOptional)
}

// Or appends "|" and, when text is non-empty, a Find group for text.
//
// The left-hand alternative must already be in the buffer; Or does not check.
// Or("") leaves a dangling "|" on purpose. With regexp that is an empty
// alternative that matches everywhere.
func (e *Expression) Or(text string) *Expression {
	e.Add(tokenAlternation)
	if text == "" {
		return e
	}

	return e.Then(text)
}

// Something captures one or more of any character: "(.+)".
func (e *Expression) Something() *Expression {
	return e.Add(fragmentSomething)
}

// SomethingBut matches a non-empty run of characters not in chars:
// "(?:[^" chars "]+)".
func (e *Expression) SomethingBut(chars string) *Expression {
	return e.OpenGroup().
		OpenClass().
		Add(tokenNegate).
		Add(chars).
		CloseClass().
		Add(tokenOneOrMore).
		CloseGroup()
}

// StartOfLine appends the "^" anchor.
func (e *Expression) StartOfLine() *Expression {
	return e.Add(tokenStartOfLine)
}

// Tab appends the escaped tab character "\t".
func (e *Expression) Tab() *Expression {
	return e.Add(fragmentTab)
}

// Word matches a run of word characters: "(?:\w+)".
func (e *Expression) Word() *Expression {
	return e.Find(fragmentWordChars)
}
