// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// range.go - character ranges.

package builder

import (
	"strings"
)

// CharRange is an inclusive character range From-To inside a class.
// From ≤ To is NOT checked. An invalid rune (negative, a surrogate, or above
// utf8.MaxRune) is written as U+FFFD by Range.
type CharRange struct {
	From rune
	To   rune
}

// Range appends a single class built from pairs in the given order:
// "[" From "-" To ... "]". The class is assembled first and appended with one
// Add, so the buffer never holds a half-written class.
//
// Neither bounds order nor overlap is validated, and class metacharacters in
// a bound are not escaped. Range() with no pairs appends "[]", which regexp
// rejects at compile time.
//
// Example:
//
//	builder.New().Range(builder.CharRange{From: 'a', To: 'z'}, builder.CharRange{From: 'A', To: 'Z'}) // "[a-zA-Z]"
func (e *Expression) Range(pairs ...CharRange) *Expression {
	var sb strings.Builder
	sb.WriteString(tokenOpenClass)
	for _, p := range pairs {
		sb.WriteRune(p.From)
		sb.WriteString(tokenRangeDash)
		sb.WriteRune(p.To)
	}
	sb.WriteString(tokenCloseClass)

	return e.Add(sb.String())
}
