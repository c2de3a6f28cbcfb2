// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// primitives.go - raw buffer mutation and the class/group delimiters.
//
// Add is the only primitive that grows the buffer; every other operation in
// this package is a fixed sequence of Add calls. Replace is the only one that
// rewrites existing text.

package builder

import (
	"strings"
)

// Add appends text to the buffer verbatim.
func (e *Expression) Add(text string) *Expression {
	e.buf += text
	return e
}

// Replace substitutes every non-overlapping occurrence of from with to,
// left to right, across the whole buffer.
//
// The buffer is treated as plain text: Replace knows nothing about groups or
// escapes and can break previously well-formed syntax. Choosing safe from/to
// values is the caller's job.
func (e *Expression) Replace(from, to string) *Expression {
	e.buf = strings.ReplaceAll(e.buf, from, to)
	return e
}

// OpenClass appends "[".
func (e *Expression) OpenClass() *Expression {
	return e.Add(tokenOpenClass)
}

// CloseClass appends "]".
func (e *Expression) CloseClass() *Expression {
	return e.Add(tokenCloseClass)
}

// OpenGroup appends a non-capturing group opener "(?:".
func (e *Expression) OpenGroup() *Expression {
	return e.Add(tokenOpenGroup)
}

// OpenCapturingGroup appends "(". Close it with CloseGroup.
func (e *Expression) OpenCapturingGroup() *Expression {
	return e.Add(tokenOpenCapturingGroup)
}

// CloseGroup appends ")".
func (e *Expression) CloseGroup() *Expression {
	return e.Add(tokenCloseGroup)
}
