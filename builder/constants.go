// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// constants.go — every syntax token the builder emits.
//
// Contract:
//   - Operations never spell pattern syntax inline; they compose these tokens
//     through Add and the delimiter helpers, so the emitted grammar lives here.
//   - Tokens target the RE2 flavor accepted by regexp.Compile.

package builder

//-----------------------------------------------------------------------------
// Delimiters
//-----------------------------------------------------------------------------

const (
	tokenOpenClass          = `[`
	tokenCloseClass         = `]`
	tokenOpenGroup          = `(?:`
	tokenOpenCapturingGroup = `(`
	tokenCloseGroup         = `)`
)

//-----------------------------------------------------------------------------
// Anchors, quantifiers and operators
//-----------------------------------------------------------------------------

const (
	tokenStartOfLine = `^`
	tokenEndOfLine   = `$`
	tokenNegate      = `^` // only meaningful right after tokenOpenClass
	tokenZeroOrMore  = `*`
	tokenOneOrMore   = `+`
	tokenOptional    = `?`
	tokenAlternation = `|`
	tokenRangeDash   = `-`
)

//-----------------------------------------------------------------------------
// Canned fragments
//-----------------------------------------------------------------------------

const (
	// fragmentAnything captures zero or more of any character.
	fragmentAnything = `(.*)`
	// fragmentSomething captures one or more of any character.
	fragmentSomething = `(.+)`
	// fragmentNewline and fragmentCRLF are the two line-ending conventions.
	fragmentNewline = `\n`
	fragmentCRLF    = `\r\n`
	// fragmentTab is the escaped tab character.
	fragmentTab = `\t`
	// fragmentWordChars is a run of alphanumeric or underscore characters.
	fragmentWordChars = `\w+`
)
