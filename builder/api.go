// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - One type: Expression wraps a single pattern buffer.
//   - Every mutating method returns the SAME *Expression (never a copy), so a
//     chain and any other holder of the pointer observe identical state.
//   - Operations are total: any text is accepted verbatim, nothing is escaped,
//     nothing is validated. Malformed patterns surface only at Compile time.
//   - Compile is a pure delegation point: no pre-validation, no retry, and the
//     collaborator's error is returned as-is.
//
// AI-Hints (practical):
//   - Escape caller literals with regexp.QuoteMeta before Find/Then/Capture.
//   - Use WithCompileFunc(regexp.CompilePOSIX) only for patterns that avoid
//     Perl-only syntax; Find/Word/AnythingBut emit `(?:` and `\w`.

package builder

import (
	"regexp"
	"strconv"
)

// Expression is a fluent regular-expression builder. The zero value is an
// empty expression that compiles with regexp.Compile.
//
// Concurrency:
//   - Not safe for concurrent mutation; callers own the instance exclusively
//     or provide their own locking.
type Expression struct {
	buf string
	cfg builderConfig
}

// New returns an empty Expression.
// Complexity: O(len(opts)).
func New(opts ...Option) *Expression {
	return &Expression{cfg: newBuilderConfig(opts...)}
}

// FromString returns an Expression whose buffer is an exact copy of text.
// No validation is performed.
// Complexity: O(len(opts)).
func FromString(text string, opts ...Option) *Expression {
	return &Expression{buf: text, cfg: newBuilderConfig(opts...)}
}

// Source returns the current buffer. It has no side effects.
func (e *Expression) Source() string {
	return e.buf
}

// Raw is an alias of Source.
func (e *Expression) Raw() string {
	return e.Source()
}

// Value is an alias of Source.
func (e *Expression) Value() string {
	return e.Source()
}

// String implements fmt.Stringer and returns the current buffer.
func (e *Expression) String() string {
	return e.Source()
}

// Compile hands the current buffer to the configured compile function
// (regexp.Compile by default) and returns its result unmodified.
//
// Errors:
//   - Exactly the collaborator's error; with the default collaborator this is
//     a *syntax.Error from regexp/syntax. Never wrapped.
//
// Determinism:
//   - Same buffer and same options ⇒ same result.
func (e *Expression) Compile() (*regexp.Regexp, error) {
	compile := e.cfg.compile
	if compile == nil {
		// zero-value Expression
		compile = defaultCompile
	}

	return compile(e.buf)
}

// Regex is an alias of Compile.
func (e *Expression) Regex() (*regexp.Regexp, error) {
	return e.Compile()
}

// MustCompile is like Compile but panics if the collaborator rejects the
// pattern. Intended for package-level matcher variables.
func (e *Expression) MustCompile() *regexp.Regexp {
	re, err := e.Compile()
	if err != nil {
		panic("builder: Compile(" + strconv.Quote(e.buf) + "): " + err.Error())
	}

	return re
}
